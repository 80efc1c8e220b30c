package update_vendor_profile

import (
	"strings"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/marketplace"
)

// UpdateVendorProfileRequest HTTP request model
type UpdateVendorProfileRequest struct {
	BusinessName *string `json:"businessName,omitempty"`
	Description  *string `json:"description,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	City         *string `json:"city,omitempty"`
}

// IsEmpty возвращает true, если ни одно поле не передано
func (r *UpdateVendorProfileRequest) IsEmpty() bool {
	return r.BusinessName == nil && r.Description == nil && r.Phone == nil && r.City == nil
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateVendorProfileRequest) ToServiceRequest() marketplace.VendorRequest {
	return marketplace.VendorRequest{
		BusinessName: trimmed(r.BusinessName),
		Description:  r.Description,
		Phone:        trimmed(r.Phone),
		City:         trimmed(r.City),
	}
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	return &s
}
