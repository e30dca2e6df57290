package render

// licenseCategories maps driving-license category codes to their descriptive
// Hebrew labels. Shared by both templates; keep in sync with the editor's
// category picker.
var licenseCategories = map[string]string{
	"B":    "B - רכב פרטי עד 3.5 טון",
	"C1":   "C1 - רכב משא עד 12 טון",
	"C":    "C - רכב משא מעל 12 טון",
	"C,E":  "C,E - גורר תומך (סמיטרלייר)",
	"B,D":  "B,D - אוטובוס + פרטי",
	"C1,D": "C1,D - אוטובוס + משא",
	"D1":   "D1 - מונית + אוטובוס זעיר עד 5 טון",
	"D2":   "D2 - אוטובוס זעיר ציבורי עד 5 טון",
	"D3":   "D3 - אוטובוס זעיר פרטי עד 5 טון",
	"7":    "7 - היתר לטיולית",
	"1":    "1 - טרקטור",
	"A2":   `A2 - אופנוע עד 125 סמ"ק (עד 14.6 כח סוס)`,
	"A1":   "A1 - אופנוע עד 33 כח סוס (עד 25 קילוואט)",
	"A":    "A - אופנוע מעל 33 כח סוס (מעל 25 קילוואט)",
}

// LicenseLabel resolves a license category code to its descriptive label.
// Unknown codes are returned verbatim.
func LicenseLabel(code string) string {
	if label, ok := licenseCategories[code]; ok {
		return label
	}
	return code
}
