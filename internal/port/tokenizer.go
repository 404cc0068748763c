package port

// Tokenizer splits one normalized line into tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}
