package iotsitewise

type nextTokenGetter interface {
	GetNextToken() string
}

// HasMorePages reports whether a paginated result carries a token for a
// further page. Results of operations that are not paginated never do.
func HasMorePages(result any) bool {
	p, ok := result.(nextTokenGetter)
	return ok && p.GetNextToken() != ""
}
