package identity

import (
	"context"
	"strings"

	"firebase.google.com/go/v4/auth"
)

// Profile is the provider-side view of an account, reduced to the fields the
// sync flow needs.
type Profile struct {
	DisplayName string
	Username    string // optional, most providers leave it empty
	Emails      []string
	PhotoURL    string
}

// Fetcher loads the provider profile for an external identity id.
type Fetcher interface {
	Fetch(ctx context.Context, uid string) (*Profile, error)
}

// FirebaseFetcher reads profiles through the Firebase Admin auth client.
type FirebaseFetcher struct {
	client *auth.Client
}

// NewFirebaseFetcher creates a new FirebaseFetcher
func NewFirebaseFetcher(client *auth.Client) *FirebaseFetcher {
	return &FirebaseFetcher{client: client}
}

func (f *FirebaseFetcher) Fetch(ctx context.Context, uid string) (*Profile, error) {
	rec, err := f.client.GetUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		DisplayName: rec.DisplayName,
		PhotoURL:    rec.PhotoURL,
	}
	if rec.Email != "" {
		p.Emails = append(p.Emails, rec.Email)
	}
	// Linked providers can carry addresses the primary record doesn't.
	for _, info := range rec.ProviderUserInfo {
		if info.Email != "" && info.Email != rec.Email {
			p.Emails = append(p.Emails, info.Email)
		}
	}
	if v, ok := rec.CustomClaims["username"].(string); ok {
		p.Username = v
	}
	return p, nil
}

// PrimaryEmail returns the first known address, or an empty string.
func (p *Profile) PrimaryEmail() string {
	if len(p.Emails) == 0 {
		return ""
	}
	return p.Emails[0]
}

// FallbackUsername derives a handle from the primary email's local part, for
// accounts whose provider profile has no username of its own.
func (p *Profile) FallbackUsername() string {
	email := p.PrimaryEmail()
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
