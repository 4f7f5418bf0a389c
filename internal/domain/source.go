package domain

// SourceDocument is one raw vendor dump as uploaded, before parsing.
type SourceDocument struct {
	FileName string
	Content  []byte
}
