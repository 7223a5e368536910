package confirm_extension

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if err := req.NewEndDate.Validate(); err != nil {
		return fmt.Errorf("%w: newEndDate: %v", ErrInvalidInput, err)
	}

	if err := req.NewEndTime.Validate(); err != nil {
		return fmt.Errorf("%w: newEndTime: %v", ErrInvalidInput, err)
	}

	if !req.PaymentMethod.IsValid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.PaymentMethod)
	}

	return nil
}
