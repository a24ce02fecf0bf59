package domain

type Credentials struct {
	Username string
	Password string
}

type Registration struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
	Country   string
}

// AuthSession is what a successful login returns: the bearer token plus the
// identity the server resolved for it.
type AuthSession struct {
	Token     string
	TokenType string
	Identity  UserIdentity
}

// Session is the client's cached record of the authenticated user and their
// access token. The zero value is the anonymous session.
type Session struct {
	Identity *UserIdentity
	Token    string
}

// Authenticated reports whether both the identity and the token are present.
func (s Session) Authenticated() bool {
	return s.Identity != nil && s.Token != ""
}
