package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"ofm_manager/constants"
	"ofm_manager/model"
	"ofm_manager/store"
)

// MemberService is the one parameterized registration/credential path
// behind the partner, customer and delivery endpoints, which used to be
// near-identical copies of each other.
type MemberService struct {
	Store store.Store
}

func NewMemberService(st store.Store) *MemberService {
	return &MemberService{Store: st}
}

func (s *MemberService) Register(ctx context.Context, role string, input model.RegisterMemberInput) (Status, error) {
	if _, err := s.Store.Get(ctx, tenantPath(input.TenantName)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return StatusNotFound, nil
		}
		return StatusError, err
	}

	path := memberCollection(input.TenantName, role) + "/" + input.Name
	if _, err := s.Store.Get(ctx, path); err == nil {
		return StatusDuplicate, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return StatusError, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), 10)
	if err != nil {
		return StatusError, err
	}

	doc := store.Doc{
		"name":       input.Name,
		"address":    input.Address,
		"phone":      input.Phone,
		"password":   string(hash),
		"created_at": time.Now(),
	}
	if role == constants.ROLE_DELIVERY {
		doc["status"] = constants.DELIVERY_STATUS_AVAILABLE
	}
	if err := s.Store.Set(ctx, path, doc, false); err != nil {
		return StatusError, err
	}
	return StatusSuccess, nil
}

// Get returns a member record without its password hash.
func (s *MemberService) Get(ctx context.Context, role, tenant, name string) (*model.Member, error) {
	doc, err := s.Store.Get(ctx, memberCollection(tenant, role)+"/"+name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &NotFoundError{Resource: role}
		}
		return nil, err
	}
	member := &model.Member{
		Name:          store.Str(doc, "name"),
		Address:       store.Str(doc, "address"),
		Phone:         store.Str(doc, "phone"),
		Status:        store.Str(doc, "status"),
		ActiveOrderID: store.Str(doc, "activeOrderId"),
	}
	if t, ok := doc["created_at"].(time.Time); ok {
		member.CreatedAt = t
	}
	return member, nil
}

// SetDeliveryStatus updates a delivery worker's availability flag.
func (s *MemberService) SetDeliveryStatus(ctx context.Context, tenant, name, deliveryStatus string) error {
	err := s.Store.Update(ctx, memberCollection(tenant, constants.ROLE_DELIVERY)+"/"+name, store.Doc{
		"status": deliveryStatus,
	})
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Resource: constants.ROLE_DELIVERY}
	}
	return err
}

func (s *MemberService) CheckPassword(ctx context.Context, role string, input model.MemberPasswordInput) (Status, error) {
	doc, err := s.Store.Get(ctx, memberCollection(input.TenantName, role)+"/"+input.Name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return StatusNotFound, nil
		}
		return StatusError, err
	}
	hash := store.Str(doc, "password")
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)) != nil {
		return StatusWrongPassword, nil
	}
	return StatusSuccess, nil
}
