package shop

import (
	"context"

	"github.com/frahmantamala/shopfront/internal"
)

const (
	MessageShopAdded     = "Shop added successfully!"
	MessageAddShopFailed = "Failed to add shop."

	submitLabel        = "Add Shop"
	submitLoadingLabel = "Adding..."
)

type ShopCreator interface {
	CreateShop(ctx context.Context, title, description, categoryID string) (*Shop, error)
}

// AddShopForm is the state of the add-shop page.
type AddShopForm struct {
	Title          string
	Description    string
	CategoryID     string
	Loading        bool
	SuccessMessage string
	Alert          string
	Errors         map[string]string
}

func (f *AddShopForm) SubmitDisabled() bool {
	return f.Loading
}

func (f *AddShopForm) SubmitLabel() string {
	if f.Loading {
		return submitLoadingLabel
	}
	return submitLabel
}

// Submit writes the form through creator. Loading is held for the duration of
// the call. Success clears the fields; failure keeps them.
func (f *AddShopForm) Submit(ctx context.Context, creator ShopCreator) (*Shop, error) {
	if f.Loading {
		return nil, internal.ErrSubmissionInFlight
	}

	f.Loading = true
	defer func() { f.Loading = false }()

	f.SuccessMessage = ""
	f.Alert = ""
	f.Errors = nil

	created, err := creator.CreateShop(ctx, f.Title, f.Description, f.CategoryID)
	if err != nil {
		if appErr, ok := internal.IsAppError(err); ok && appErr.Type == internal.ErrorTypeValidation {
			f.Errors = appErr.FieldErrors()
			return nil, err
		}
		f.Alert = MessageAddShopFailed
		return nil, err
	}

	f.Title = ""
	f.Description = ""
	f.CategoryID = ""
	f.SuccessMessage = MessageShopAdded
	return created, nil
}
