package auth

import "github.com/CaCortez384/MiFestival/internal/models"

// GuestOwnerID is the reserved owner identifier for festivals created
// without signing in. Guest festivals are explicitly non-durable: they
// belong to nobody once the session ends.
const GuestOwnerID = "guest"

// Principal is the signed-in identity (or the guest sentinel). It is a
// closed set: RealUser or Guest, nothing else. Pass it explicitly into
// whatever needs it — there is no ambient session global.
type Principal interface {
	OwnerID() string
	DisplayName() string
	sealed()
}

// RealUser is an authenticated account.
type RealUser struct {
	ID   string
	Name string
	Role string
}

func (u RealUser) OwnerID() string     { return u.ID }
func (u RealUser) DisplayName() string { return u.Name }
func (RealUser) sealed()               {}

// Guest is the not-signed-in principal.
type Guest struct{}

func (Guest) OwnerID() string     { return GuestOwnerID }
func (Guest) DisplayName() string { return "Invitado" }
func (Guest) sealed()             {}

// IsGuest avoids scattering type switches through the handlers.
func IsGuest(p Principal) bool {
	_, ok := p.(Guest)
	return ok
}

// CanEdit is the single ownership rule: only the festival's owner may
// mutate it. Guests own exactly the guest-sentinel festivals.
func CanEdit(p Principal, f *models.Festival) bool {
	return p.OwnerID() == f.OwnerID
}
