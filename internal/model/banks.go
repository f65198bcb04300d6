package model

// Bank is a static catalog entry: display name and brand colors.
// Purely cosmetic; nothing in the balance engine depends on it.
type Bank struct {
	ID        string
	Name      string
	Color     string
	Secondary string
}

var banks = []Bank{
	{ID: "nubank", Name: "Nubank", Color: "#820AD1", Secondary: "#FFFFFF"},
	{ID: "inter", Name: "Banco Inter", Color: "#FF7A00", Secondary: "#FFFFFF"},
	{ID: "itau", Name: "Itaú", Color: "#EC7000", Secondary: "#003399"},
	{ID: "bradesco", Name: "Bradesco", Color: "#CC092F", Secondary: "#FFFFFF"},
	{ID: "santander", Name: "Santander", Color: "#EC0000", Secondary: "#FFFFFF"},
	{ID: "bb", Name: "Banco do Brasil", Color: "#FFCC00", Secondary: "#003882"},
	{ID: "caixa", Name: "Caixa Econômica", Color: "#005CA9", Secondary: "#F37021"},
	{ID: "c6", Name: "C6 Bank", Color: "#1A1A1A", Secondary: "#FFCC00"},
	{ID: "btg", Name: "BTG Pactual", Color: "#001E50", Secondary: "#FFFFFF"},
	{ID: "xp", Name: "XP Investimentos", Color: "#1E1E1E", Secondary: "#D4AF37"},
	{ID: "neon", Name: "Neon", Color: "#00E5A0", Secondary: "#1A1A1A"},
	{ID: "picpay", Name: "PicPay", Color: "#21C25E", Secondary: "#FFFFFF"},
	{ID: "ifood", Name: "iFood Benefícios", Color: "#EA1D2C", Secondary: "#FFFFFF"},
	{ID: "cash", Name: "Dinheiro em Espécie", Color: "#4CAF50", Secondary: "#FFFFFF"},
	{ID: "other", Name: "Outro Banco", Color: "#607D8B", Secondary: "#FFFFFF"},
}

// Banks returns the full bank catalog.
func Banks() []Bank {
	return banks
}

// BankByID returns the catalog entry for id, falling back to the
// generic "other" entry for unknown ids.
func BankByID(id string) Bank {
	for _, b := range banks {
		if b.ID == id {
			return b
		}
	}
	return banks[len(banks)-1]
}
