package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"dastawez_backend/internal/models"
	"dastawez_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory repository fakes. They honor the same sentinel errors as
// the GORM implementations so service error mapping can be tested.

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[string]*models.Service)}
}

func (r *fakeServiceRepo) add(s *models.Service) *models.Service {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	r.services[s.ID] = s
	return s
}

func (r *fakeServiceRepo) Create(s *models.Service) error {
	r.add(s)
	return nil
}

func (r *fakeServiceRepo) FindByID(id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, repositories.ErrServiceNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeServiceRepo) FindActive() ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) FindAll() ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeServiceRepo) FindByCategory(category models.ServiceCategory) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if s.Category == category && s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) Update(s *models.Service) error {
	if _, ok := r.services[s.ID]; !ok {
		return repositories.ErrServiceNotFound
	}
	r.services[s.ID] = s
	return nil
}

func (r *fakeServiceRepo) SetActive(id string, active bool) error {
	s, ok := r.services[id]
	if !ok {
		return repositories.ErrServiceNotFound
	}
	s.IsActive = active
	return nil
}

func (r *fakeServiceRepo) Delete(id string) error {
	if _, ok := r.services[id]; !ok {
		return repositories.ErrServiceNotFound
	}
	delete(r.services, id)
	return nil
}

type fakeOrderRepo struct {
	orders map[string]*models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*models.Order)}
}

func (r *fakeOrderRepo) Create(o *models.Order) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	copied := *o
	r.orders[o.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) FindByID(id string) (*models.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, repositories.ErrOrderNotFound
	}
	copied := *o
	return &copied, nil
}

func (r *fakeOrderRepo) FindByUser(userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) FindAll() ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(id string, status models.OrderStatus) error {
	o, ok := r.orders[id]
	if !ok {
		return repositories.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

func (r *fakeOrderRepo) UpdateDeliveryDate(id string, date *time.Time) error {
	o, ok := r.orders[id]
	if !ok {
		return repositories.ErrOrderNotFound
	}
	o.ExpectedDeliveryDate = date
	return nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	if _, ok := r.orders[id]; !ok {
		return repositories.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) CountByStatus() (map[models.OrderStatus]int64, error) {
	counts := make(map[models.OrderStatus]int64)
	for _, o := range r.orders {
		counts[o.Status]++
	}
	return counts, nil
}

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (r *fakeProfileRepo) Create(p *models.Profile) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	r.profiles[p.UserID] = p
	return nil
}

func (r *fakeProfileRepo) FindByUserID(userID string) (*models.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProfileRepo) Update(p *models.Profile) error {
	if _, ok := r.profiles[p.UserID]; !ok {
		return repositories.ErrProfileNotFound
	}
	r.profiles[p.UserID] = p
	return nil
}

func (r *fakeProfileRepo) Upsert(p *models.Profile) error {
	r.profiles[p.UserID] = p
	return nil
}

type fakeDocumentRepo struct {
	orderDocs map[string]*models.OrderDocument
	userDocs  map[string]*models.UserDocument
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{
		orderDocs: make(map[string]*models.OrderDocument),
		userDocs:  make(map[string]*models.UserDocument),
	}
}

func (r *fakeDocumentRepo) CreateOrderDocument(d *models.OrderDocument) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	copied := *d
	r.orderDocs[d.ID] = &copied
	return nil
}

func (r *fakeDocumentRepo) FindOrderDocument(id string) (*models.OrderDocument, error) {
	d, ok := r.orderDocs[id]
	if !ok {
		return nil, repositories.ErrDocumentNotFound
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDocumentRepo) FindOrderDocumentByPath(path string) (*models.OrderDocument, error) {
	for _, d := range r.orderDocs {
		if d.StoragePath == path {
			copied := *d
			return &copied, nil
		}
	}
	return nil, repositories.ErrDocumentNotFound
}

func (r *fakeDocumentRepo) FindByOrder(orderID string) ([]models.OrderDocument, error) {
	var out []models.OrderDocument
	for _, d := range r.orderDocs {
		if d.OrderID == orderID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) DeleteOrderDocument(id string) error {
	if _, ok := r.orderDocs[id]; !ok {
		return repositories.ErrDocumentNotFound
	}
	delete(r.orderDocs, id)
	return nil
}

func (r *fakeDocumentRepo) CreateUserDocument(d *models.UserDocument) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	copied := *d
	r.userDocs[d.ID] = &copied
	return nil
}

func (r *fakeDocumentRepo) FindUserDocument(id string) (*models.UserDocument, error) {
	d, ok := r.userDocs[id]
	if !ok {
		return nil, repositories.ErrDocumentNotFound
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDocumentRepo) FindUserDocumentByPath(path string) (*models.UserDocument, error) {
	for _, d := range r.userDocs {
		if d.StoragePath == path {
			copied := *d
			return &copied, nil
		}
	}
	return nil, repositories.ErrDocumentNotFound
}

func (r *fakeDocumentRepo) FindByUser(userID string) ([]models.UserDocument, error) {
	var out []models.UserDocument
	for _, d := range r.userDocs {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) DeleteUserDocument(id string) error {
	if _, ok := r.userDocs[id]; !ok {
		return repositories.ErrDocumentNotFound
	}
	delete(r.userDocs, id)
	return nil
}

// fakeStorage keeps objects in a map and records deletions.
type fakeStorage struct {
	objects map[string][]byte
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (s *fakeStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[path] = data
	return nil
}

func (s *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	data, ok := s.objects[path]
	if !ok {
		return nil, fmt.Errorf("object not found: %s", path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStorage) Delete(ctx context.Context, path string) error {
	delete(s.objects, path)
	s.deleted = append(s.deleted, path)
	return nil
}

func (s *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := s.objects[path]
	return ok, nil
}

func (s *fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "http://files.test/" + path, nil
}

func (s *fakeStorage) GetSize(ctx context.Context, path string) (int64, error) {
	data, ok := s.objects[path]
	if !ok {
		return 0, fmt.Errorf("object not found: %s", path)
	}
	return int64(len(data)), nil
}
