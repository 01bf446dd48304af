package pattern

import (
	"context"
	"unicode/utf8"

	pool "github.com/jolestar/go-commons-pool"
)

// Scanner is a one-off iterator over the matches of a Matcher in an input
// text. Successive calls to Next step through the matches; Span returns the
// current one. Once Next has returned false, the scanner is exhausted; a fresh
// scan needs a new Scanner.
//
// Scanners are pooled. Clients should call Release when done with a scanner,
// and must not use it afterwards.
type Scanner struct {
	matcher *Matcher
	text    string
	pos     int // next position to try
	span    Span
	done    bool
}

// Scanner returns a new Scanner for text.
func (m *Matcher) Scanner(text string) *Scanner {
	sc := borrowScanner()
	sc.matcher = m
	sc.text = text
	return sc
}

// Next advances the scanner to the next match. It returns false if there are
// no more matches.
func (sc *Scanner) Next() bool {
	if sc.done || sc.matcher == nil {
		return false
	}
	for sc.pos < len(sc.text) {
		if l := sc.matcher.matchAt(sc.text, sc.pos); l > 0 {
			sc.span = Span{Text: sc.text[sc.pos : sc.pos+l], Offset: sc.pos}
			sc.pos += l
			return true
		}
		_, size := utf8.DecodeRuneInString(sc.text[sc.pos:])
		sc.pos += size
	}
	sc.done = true
	sc.span = Span{}
	return false
}

// Span returns the most recent match found by Next.
func (sc *Scanner) Span() Span {
	return sc.span
}

// Release clears the scanner and puts it back into the pool.
func (sc *Scanner) Release() {
	if sc.matcher == nil {
		return
	}
	sc.matcher = nil
	sc.text = ""
	sc.pos = 0
	sc.span = Span{}
	sc.done = false
	_ = globalScannerPool.opool.ReturnObject(globalScannerPool.ctx, sc)
}

// Scanners are short-lived objects, created for every detection call.
// To avoid allocating them over and over again we will pool them.
type scannerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScannerPool *scannerPool

func init() {
	globalScannerPool = &scannerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Scanner{}, nil
		})
	globalScannerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScannerPool.opool = pool.NewObjectPool(globalScannerPool.ctx, factory, config)
}

func borrowScanner() *Scanner {
	o, err := globalScannerPool.opool.BorrowObject(globalScannerPool.ctx)
	if err != nil {
		tracer().Errorf("cannot borrow scanner from pool: %v", err)
		return &Scanner{}
	}
	return o.(*Scanner)
}
