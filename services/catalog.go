package services

import (
	"fmt"

	"github.com/google/uuid"

	"yanails-backend/models"
	"yanails-backend/utils"
)

// catalogNamespace keeps seeded service ids stable across restarts.
var catalogNamespace = uuid.MustParse("6f1c2b0e-9a57-4d2b-8f3e-2a7c9d41e5b8")

type seedService struct {
	title string
	price int64
	image string
}

var seed = []seedService{
	{"Manicura Completa", 5000, "https://images.unsplash.com/photo-1505682634904-d7c68f5388af?q=80&w=800"},
	{"Esmaltado Express", 8000, "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?q=80&w=800"},
	{"Esmaltado Permanente", 10000, "https://images.unsplash.com/photo-1580136579312-94651dfd596d?q=80&w=800"},
	{"Realce Acrílico", 15000, "https://images.unsplash.com/photo-1582092728068-13a5b3956d2d?q=80&w=800"},
	{"Kapping Polygel", 15000, "https://images.unsplash.com/photo-1604902396788-a896f21f681c?q=80&w=800"},
	{"Acrílicas Esculpidas", 22000, "https://images.unsplash.com/photo-1604902396788-a896f21f681c?q=80&w=800"},
	{"Acrílicas con Tips", 20000, "https://images.unsplash.com/photo-1582092728068-13a5b3956d2d?q=80&w=800"},
	{"Soft Gel (Gel X)", 18000, "https://images.unsplash.com/photo-1505682634904-d7c68f5388af?q=80&w=800"},
	{"Pedicura Permanente", 15000, "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?q=80&w=800"},
	{"Acripie", 20000, "https://images.unsplash.com/photo-1580136579312-94651dfd596d?q=80&w=800"},
	{"Solo Retiro", 7000, "https://images.unsplash.com/photo-1457972729786-22d4a654050b?q=80&w=800"},
	{"Retiro de Otro Lugar", 10000, "https://images.unsplash.com/photo-1457972729786-22d4a654050b?q=80&w=800"},
}

// DefaultCatalog returns the salon's service list.
func DefaultCatalog() []models.Service {
	out := make([]models.Service, 0, len(seed))
	for _, s := range seed {
		out = append(out, models.Service{
			ID:          uuid.NewSHA1(catalogNamespace, []byte(s.title)),
			Title:       s.title,
			Description: fmt.Sprintf("Servicio desde $%s.", formatCLP(s.price)),
			Price:       s.price,
			ImageURL:    s.image,
		})
	}
	return out
}

// ValidateCatalog checks every entry and rejects duplicate ids.
func ValidateCatalog(catalog []models.Service) error {
	seen := make(map[uuid.UUID]struct{}, len(catalog))
	for i, s := range catalog {
		if errs := utils.Validate(s); errs != nil {
			return fmt.Errorf("catalog entry %d (%q): %v", i, s.Title, errs)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("catalog entry %d (%q): duplicate id %s", i, s.Title, s.ID)
		}
		seen[s.ID] = struct{}{}
	}
	return nil
}

// formatCLP renders 15000 as "15.000".
func formatCLP(v int64) string {
	s := fmt.Sprintf("%d", v)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, s[i])
	}
	return string(out)
}
