package hcl

// fileRoot is the top-level structure of a catalog file.
type fileRoot struct {
	Plants []*plantBlock `hcl:"plant,block"`
}

// plantBlock represents a `plant "<id>" { ... }` block.
type plantBlock struct {
	ID         string `hcl:"id,label"`
	Name       string `hcl:"name"`
	Scientific string `hcl:"scientific"`
	Category   string `hcl:"category"`
}
