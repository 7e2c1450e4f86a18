package usda

// VirginiaWetlandSymbols are USDA PLANTS symbols of common Virginia native
// wetland species, grouped by growth form.
var VirginiaWetlandSymbols = []string{
	// Trees
	"ACRU", "LITU", "LIST2", "TADI2", "BENI", "QUPH", "FRPE", "PLOC", "NYSY", "QUBI",
	"ACNE2", "ACSA2", "QUPA2", "QUAL", "QURU", "QUVE", "QUCO2", "FAGR", "CARO8", "JUNI",
	"PITA", "PIVI2", "SANI", "ULAM", "ULRU", "CEOC", "DIVI5", "MAAC", "PODE3", "PRSE2",
	// Shrubs
	"CEOC2", "COAM2", "LIBE3", "SANIC5", "VACO", "ILVE", "ROPA", "ARAR7", "CLAL3", "RHTY",
	"VIRA", "LOJA", "ITVI", "HAVI4", "MYGA", "MYRI2", "COST4", "PHOP", "ALSE2", "RHVE",
	// Herbs and wildflowers
	"LOCA2", "IRVE2", "EUPU9", "EUPE3", "ASIN", "SYFO", "POCO14", "PEVI", "SACE", "IMCA",
	"LOCA3", "MIVI", "CHGL", "EUMA11", "HEAU", "RUHI2", "CASA12", "EUFI2", "POLY9", "EQHY",
	"VELA4", "TYPHA", "SALA2", "ACCA2", "IRPS", "PELE2", "LOOR", "ECTE", "HYVE", "NULU",
	// Grasses, sedges and rushes
	"JUEF", "SCCY", "PAVI2", "CAST8", "CALU7", "CAGR4", "CACO15", "CAVE4", "SPCY", "SCAM6",
	"SCPU10", "ELQU2", "DIAC", "GLYG", "LEER", "PHAM4", "ZIZA", "SPPA", "SPPE", "ANGE",
	// Ferns
	"OSCI", "OSRE", "ONSE", "ATFI", "DRCA12", "WOOD", "THNO", "THPA", "DIPU3", "BLSP",
	// Vines
	"PAQU2", "CARA2", "VIRO3", "VIRU", "VILA5", "DECA7", "SMRO", "BISA", "CECA4", "MIRE",
}
