package order

import (
	"errors"

	"exportpro/internal/pkg/errs"
	"exportpro/internal/pkg/guard"
)

var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

// Client is the buyer reference carried by an order. The company name is
// mandatory; contact person and email are optional and kept verbatim.
type Client struct {
	companyName   string
	contactPerson string
	email         string

	guard guard.ConstructorGuard
}

// NewClient creates a client reference. Fails when the company name is empty.
func NewClient(companyName, contactPerson, email string) (Client, error) {
	if companyName == "" {
		return Client{}, errs.NewValueIsRequiredError("company name")
	}

	return Client{
		companyName:   companyName,
		contactPerson: contactPerson,
		email:         email,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the client was created through the constructor.
func (c Client) Validate() error {
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// CompanyName returns the buyer's company name.
func (c Client) CompanyName() string {
	return c.companyName
}

// ContactPerson returns the buyer's contact person, possibly empty.
func (c Client) ContactPerson() string {
	return c.contactPerson
}

// Email returns the buyer's contact email, possibly empty.
func (c Client) Email() string {
	return c.email
}
