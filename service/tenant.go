package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"golang.org/x/crypto/bcrypt"

	"ofm_manager/constants"
	"ofm_manager/model"
	"ofm_manager/search"
	"ofm_manager/store"
	"ofm_manager/storage"
)

// TenantService registers markets with their admin credentials and answers
// prefix search over market names.
type TenantService struct {
	Store  store.Store
	Bucket storage.Bucket
}

func NewTenantService(st store.Store, bucket storage.Bucket) *TenantService {
	return &TenantService{Store: st, Bucket: bucket}
}

// Register creates the tenant document, the admin credential record and
// the ".keep" marker object that materializes the market folder in the
// bucket. Tenant names are globally unique; a second registration with the
// same name is a duplicate outcome, not an error.
func (s *TenantService) Register(ctx context.Context, input model.RegisterAdminInput) (Status, error) {
	input.TenantName = strings.TrimSpace(input.TenantName)
	if input.TenantName == "" {
		return StatusError, &ValidationError{Fields: []string{"nameofm"}}
	}

	if _, err := s.Store.Get(ctx, tenantPath(input.TenantName)); err == nil {
		return StatusDuplicate, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return StatusError, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), 10)
	if err != nil {
		return StatusError, err
	}

	now := time.Now()
	tenant := model.Tenant{
		Name:         input.TenantName,
		NameLower:    search.Normalize(input.TenantName),
		SearchPrefix: search.BuildPrefixes(input.TenantName),
		CreatedAt:    now,
	}
	if err := s.Store.Set(ctx, tenantPath(tenant.Name), store.Doc{
		"OFM_name":       tenant.Name,
		"OFM_name_lower": tenant.NameLower,
		"search_prefix":  tenant.SearchPrefix,
		"created_at":     tenant.CreatedAt,
	}, false); err != nil {
		return StatusError, err
	}

	admin := model.Admin{}
	copier.Copy(&admin, &input)
	admin.PasswordHash = string(hash)
	admin.CreatedAt = now
	if _, err := s.Store.Add(ctx, constants.COLLECTION_ADMINS, store.Doc{
		"nameofm":    admin.TenantName,
		"adminname":  admin.AdminName,
		"address":    admin.Address,
		"phone":      admin.Phone,
		"addminpass": admin.PasswordHash,
		"created_at": admin.CreatedAt,
	}); err != nil {
		return StatusError, err
	}

	// Empty marker object so the market shows up as a folder in the bucket.
	if err := s.Bucket.Upload(ctx, input.TenantName+"/.keep", []byte{}, "text/plain"); err != nil {
		return StatusError, err
	}
	return StatusSuccess, nil
}

// Get returns a tenant's record.
func (s *TenantService) Get(ctx context.Context, name string) (*model.Tenant, error) {
	doc, err := s.Store.Get(ctx, tenantPath(strings.TrimSpace(name)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &NotFoundError{Resource: "market"}
		}
		return nil, err
	}
	tenant := &model.Tenant{
		Name:      store.Str(doc, "OFM_name"),
		NameLower: store.Str(doc, "OFM_name_lower"),
	}
	if t, ok := doc["created_at"].(time.Time); ok {
		tenant.CreatedAt = t
	}
	switch p := doc["search_prefix"].(type) {
	case []string:
		tenant.SearchPrefix = p
	case []interface{}:
		for _, v := range p {
			if prefix, ok := v.(string); ok {
				tenant.SearchPrefix = append(tenant.SearchPrefix, prefix)
			}
		}
	}
	return tenant, nil
}

// CheckPassword verifies an admin password. All three outcomes are data;
// not_found and wrong_password share the same HTTP status so the endpoint
// does not leak which market names exist.
func (s *TenantService) CheckPassword(ctx context.Context, input model.AdminPasswordInput) (Status, error) {
	snaps, err := s.Store.Query(ctx, constants.COLLECTION_ADMINS, "nameofm", "==", input.TenantName, 1)
	if err != nil {
		return StatusError, err
	}
	if len(snaps) == 0 {
		return StatusNotFound, nil
	}
	hash := store.Str(snaps[0].Data, "addminpass")
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)) != nil {
		return StatusWrongPassword, nil
	}
	return StatusSuccess, nil
}

// Search returns the names of tenants whose normalized name starts with
// term. The probe is an exact array-contains match against the stored
// prefix set, so only whole prefixes hit; no fuzzy matching.
func (s *TenantService) Search(ctx context.Context, term string, limit int) ([]string, error) {
	term = search.Normalize(term)
	if term == "" {
		return nil, &ValidationError{Fields: []string{"term"}}
	}
	snaps, err := s.Store.Query(ctx, constants.COLLECTION_TENANTS, "search_prefix", "array-contains", term, limit)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(snaps))
	for _, snap := range snaps {
		names = append(names, store.Str(snap.Data, "OFM_name"))
	}
	return names, nil
}
