package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"exportpro/internal/core/domain/model/kernel"
	"exportpro/internal/pkg/errs"
	"exportpro/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrClientCompanyIsRequired = errors.New("client company name is required")
	ErrOrderItemsAreRequired   = errors.New("order requires at least one item")
)

// OrderItemInput is one requested order line as received from the caller.
type OrderItemInput struct {
	ProductID string
	Name      string
	Quantity  float64
	UnitPrice decimal.Decimal
	UnitCost  decimal.Decimal
}

// CreateOrderCommand represents a request to run the full order intake
// pipeline: number assignment, profitability analysis, persistence, initial
// document generation and storefront notification.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	clientCompany string
	clientContact string
	clientEmail   string
	items         []OrderItemInput
	paymentTerms  string
	deliveryTerms string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new export order.
// Requires a valid order ID, a client company name and at least one item;
// per-item validation happens in the domain constructors.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientCompany, clientContact, clientEmail string,
	items []OrderItemInput,
	paymentTerms, deliveryTerms string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		clientContact: clientContact,
		clientEmail:   clientEmail,
		paymentTerms:  paymentTerms,
		deliveryTerms: deliveryTerms,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientCompany(clientCompany),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientCompany returns the buying company name.
func (c CreateOrderCommand) ClientCompany() string {
	return c.clientCompany
}

// ClientContact returns the buyer's contact person.
func (c CreateOrderCommand) ClientContact() string {
	return c.clientContact
}

// ClientEmail returns the buyer's contact email.
func (c CreateOrderCommand) ClientEmail() string {
	return c.clientEmail
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

// PaymentTerms returns the agreed payment terms.
func (c CreateOrderCommand) PaymentTerms() string {
	return c.paymentTerms
}

// DeliveryTerms returns the agreed delivery terms.
func (c CreateOrderCommand) DeliveryTerms() string {
	return c.deliveryTerms
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientCompany(clientCompany string) error {
	if clientCompany == "" {
		return ErrClientCompanyIsRequired
	}

	c.clientCompany = clientCompany
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}
	for _, item := range items {
		if item.ProductID == "" {
			return errs.NewValueIsRequiredError("product id")
		}
	}

	c.items = items
	return nil
}
