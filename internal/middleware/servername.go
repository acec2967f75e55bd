package middleware

const DefaultServerName = "restkit"

type ServerName struct {
	name string
}

func NewServerName(name string) *ServerName {
	if name == "" {
		name = DefaultServerName
	}
	return &ServerName{name: name}
}

func (s *ServerName) HandleResponse(header Header, body []byte) error {
	header.Set("Server", s.name)
	return nil
}
