package middleware

// Header is the subset of header.List the middlewares touch. *header.List
// implements it.
type Header interface {
	Value(key string) string
	Values(key string) []string
	HasToken(key, token string) bool
	Set(key string, value string)
	Remove(key string)
}

type RequestMiddleware interface {
	HandleRequest(header Header) error
}

type ResponseMiddleware interface {
	HandleResponse(header Header, body []byte) error
}

// Chain runs middlewares in the order they were added and stops at the
// first error.
type Chain struct {
	reqMW  []RequestMiddleware
	respMW []ResponseMiddleware
}

func NewChain() *Chain {
	return &Chain{}
}

func (c *Chain) UseRequestMiddleware(mw RequestMiddleware) {
	c.reqMW = append(c.reqMW, mw)
}

func (c *Chain) UseResponseMiddleware(mw ResponseMiddleware) {
	c.respMW = append(c.respMW, mw)
}

func (c *Chain) RequestMiddlewares() []RequestMiddleware {
	return c.reqMW
}

func (c *Chain) ResponseMiddlewares() []ResponseMiddleware {
	return c.respMW
}

func (c *Chain) ApplyRequestMiddlewares(header Header) error {
	for _, mw := range c.reqMW {
		if err := mw.HandleRequest(header); err != nil {
			return err
		}
	}
	return nil
}

func (c *Chain) ApplyResponseMiddlewares(header Header, body []byte) error {
	for _, mw := range c.respMW {
		if err := mw.HandleResponse(header, body); err != nil {
			return err
		}
	}
	return nil
}
