package shop_test

import (
	"context"
	"errors"

	"github.com/frahmantamala/shopfront/internal"
	"github.com/frahmantamala/shopfront/internal/shop"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// observingCreator checks the form state while the write is in flight.
type observingCreator struct {
	form       *shop.AddShopForm
	sawLoading bool
	sawLabel   string
	err        error
}

func (o *observingCreator) CreateShop(ctx context.Context, title, description, categoryID string) (*shop.Shop, error) {
	o.sawLoading = o.form.SubmitDisabled()
	o.sawLabel = o.form.SubmitLabel()
	if o.err != nil {
		return nil, o.err
	}
	return &shop.Shop{ID: 7, Title: title, Description: description}, nil
}

var _ = Describe("AddShopForm", func() {
	var form *shop.AddShopForm

	BeforeEach(func() {
		form = &shop.AddShopForm{Title: "Bakery", Description: "Bread", CategoryID: "4"}
	})

	It("should start enabled", func() {
		Expect(form.SubmitDisabled()).To(BeFalse())
		Expect(form.SubmitLabel()).To(Equal("Add Shop"))
	})

	It("should be disabled while the write is in flight", func() {
		creator := &observingCreator{form: form}

		_, err := form.Submit(context.Background(), creator)

		Expect(err).NotTo(HaveOccurred())
		Expect(creator.sawLoading).To(BeTrue())
		Expect(creator.sawLabel).To(Equal("Adding..."))
		Expect(form.SubmitDisabled()).To(BeFalse())
	})

	It("should clear the fields and show the success message", func() {
		created, err := form.Submit(context.Background(), &observingCreator{form: form})

		Expect(err).NotTo(HaveOccurred())
		Expect(created.ID).To(Equal(int64(7)))
		Expect(form.Title).To(BeEmpty())
		Expect(form.Description).To(BeEmpty())
		Expect(form.CategoryID).To(BeEmpty())
		Expect(form.SuccessMessage).To(Equal(shop.MessageShopAdded))
		Expect(form.Alert).To(BeEmpty())
	})

	It("should keep the fields and alert on failure", func() {
		creator := &observingCreator{form: form, err: errors.New("boom")}

		_, err := form.Submit(context.Background(), creator)

		Expect(err).To(HaveOccurred())
		Expect(form.Alert).To(Equal("Failed to add shop."))
		Expect(form.SuccessMessage).To(BeEmpty())
		Expect(form.Title).To(Equal("Bakery"))
		Expect(form.Description).To(Equal("Bread"))
		Expect(form.CategoryID).To(Equal("4"))
		Expect(form.SubmitDisabled()).To(BeFalse())
	})

	It("should map validation failures to fields", func() {
		creator := &observingCreator{
			form: form,
			err:  internal.NewValidationFieldError("title", "title is required", internal.ErrCodeInvalidTitle),
		}

		_, err := form.Submit(context.Background(), creator)

		Expect(err).To(HaveOccurred())
		Expect(form.Errors).To(HaveKeyWithValue("title", "title is required"))
		Expect(form.Alert).To(BeEmpty())
	})

	It("should drop a second submission while one is in flight", func() {
		form.Loading = true
		creator := &observingCreator{form: form}

		_, err := form.Submit(context.Background(), creator)

		Expect(err).To(MatchError(internal.ErrSubmissionInFlight))
		Expect(creator.sawLabel).To(BeEmpty())
	})

	It("should clear a previous success message on resubmit", func() {
		form.SuccessMessage = shop.MessageShopAdded
		creator := &observingCreator{form: form, err: errors.New("boom")}

		_, _ = form.Submit(context.Background(), creator)

		Expect(form.SuccessMessage).To(BeEmpty())
	})
})
