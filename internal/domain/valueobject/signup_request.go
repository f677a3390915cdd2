package valueobject

// UserSignupRequest is a signup intent whose fields are all individually valid.
type UserSignupRequest struct {
	username Username
	password Password
	email    EmailAddress
}

// NewUserSignupRequest validates username, password and email in that order
// and stops at the first failure.
func NewUserSignupRequest(username, password, email string) (UserSignupRequest, error) {
	u, err := NewUsername(username)
	if err != nil {
		return UserSignupRequest{}, err
	}
	p, err := NewPassword(password)
	if err != nil {
		return UserSignupRequest{}, err
	}
	e, err := NewEmailAddress(email)
	if err != nil {
		return UserSignupRequest{}, err
	}
	return UserSignupRequest{username: u, password: p, email: e}, nil
}

func (r UserSignupRequest) Username() Username { return r.username }

func (r UserSignupRequest) Password() Password { return r.password }

func (r UserSignupRequest) Email() EmailAddress { return r.email }
