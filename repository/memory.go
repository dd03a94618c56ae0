package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"menuapi-backend/models"
)

type hourKey struct {
	restaurantID uint
	day          models.DayOfWeek
}

type memoryData struct {
	restaurants map[uint]models.Restaurant
	hours       map[hourKey]models.OpeningHour
	sections    map[uint]models.Section
	items       map[uint]models.Item
	users       map[uint]models.User

	nextRestaurant uint
	nextSection    uint
	nextItem       uint
	nextUser       uint
}

func (d *memoryData) clone() *memoryData {
	out := *d
	out.restaurants = make(map[uint]models.Restaurant, len(d.restaurants))
	for k, v := range d.restaurants {
		out.restaurants[k] = v
	}
	out.hours = make(map[hourKey]models.OpeningHour, len(d.hours))
	for k, v := range d.hours {
		out.hours[k] = v
	}
	out.sections = make(map[uint]models.Section, len(d.sections))
	for k, v := range d.sections {
		out.sections[k] = v
	}
	out.items = make(map[uint]models.Item, len(d.items))
	for k, v := range d.items {
		out.items[k] = v
	}
	out.users = make(map[uint]models.User, len(d.users))
	for k, v := range d.users {
		out.users[k] = v
	}
	return &out
}

// Memory is a Store kept in process memory, used with DB_DRIVER=memory and in tests.
// Transactions work on a copy that replaces the live data only when fn succeeds.
type Memory struct {
	mu   *sync.Mutex
	data *memoryData
	inTx bool

	failures map[string]error
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		mu: &sync.Mutex{},
		data: &memoryData{
			restaurants: map[uint]models.Restaurant{},
			hours:       map[hourKey]models.OpeningHour{},
			sections:    map[uint]models.Section{},
			items:       map[uint]models.Item{},
			users:       map[uint]models.User{},
		},
		failures: map[string]error{},
	}
}

// FailOn makes every later call of the named method return err. A nil err clears it.
func (m *Memory) FailOn(method string, err error) {
	m.lock()
	defer m.unlock()
	if err == nil {
		delete(m.failures, method)
		return
	}
	m.failures[method] = err
}

func (m *Memory) lock() {
	if !m.inTx {
		m.mu.Lock()
	}
}

func (m *Memory) unlock() {
	if !m.inTx {
		m.mu.Unlock()
	}
}

func (m *Memory) fail(method string) error {
	if err, ok := m.failures[method]; ok {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

func (m *Memory) Transaction(ctx context.Context, fn func(tx Store) error) error {
	if m.inTx {
		return fn(m)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	tx := &Memory{mu: m.mu, data: m.data.clone(), inTx: true, failures: m.failures}
	if err := fn(tx); err != nil {
		return err
	}
	m.data = tx.data
	return nil
}

func (m *Memory) restaurantActive(id uint) bool {
	r, ok := m.data.restaurants[id]
	return ok && r.IsActive
}

func (m *Memory) sectionActive(id uint) bool {
	s, ok := m.data.sections[id]
	return ok && s.IsActive && m.restaurantActive(s.OwnerID())
}

func (m *Memory) activeHours(restaurantID uint) []models.OpeningHour {
	hours := []models.OpeningHour{}
	for k, h := range m.data.hours {
		if k.restaurantID == restaurantID && h.IsActive {
			hours = append(hours, h)
		}
	}
	models.SortOpeningHours(hours)
	return hours
}

func copySection(s models.Section) models.Section {
	if s.RestaurantID != nil {
		id := *s.RestaurantID
		s.RestaurantID = &id
	}
	s.Restaurant = nil
	return s
}

func sortedKeys[V any](m map[uint]V) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (m *Memory) ListActiveRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	m.lock()
	defer m.unlock()
	if err := m.fail("ListActiveRestaurants"); err != nil {
		return nil, err
	}

	out := []models.Restaurant{}
	for _, id := range sortedKeys(m.data.restaurants) {
		r := m.data.restaurants[id]
		if !r.IsActive {
			continue
		}
		r.OpeningHours = m.activeHours(id)
		out = append(out, r)
	}
	return out, nil
}

func (m *Memory) FindActiveRestaurant(ctx context.Context, id uint) (*models.Restaurant, error) {
	m.lock()
	defer m.unlock()
	if err := m.fail("FindActiveRestaurant"); err != nil {
		return nil, err
	}

	if !m.restaurantActive(id) {
		return nil, fmt.Errorf("%w: restaurant %d", ErrNotFound, id)
	}
	r := m.data.restaurants[id]
	r.OpeningHours = m.activeHours(id)
	return &r, nil
}

func (m *Memory) CreateRestaurant(ctx context.Context, r *models.Restaurant) error {
	m.lock()
	defer m.unlock()
	if err := m.fail("CreateRestaurant"); err != nil {
		return err
	}

	m.data.nextRestaurant++
	now := time.Now()
	r.ID = m.data.nextRestaurant
	r.CreatedAt, r.UpdatedAt = now, now
	stored := *r
	stored.OpeningHours = nil
	m.data.restaurants[r.ID] = stored
	return nil
}

func (m *Memory) SaveRestaurant(ctx context.Context, r *models.Restaurant) error {
	m.lock()
	defer m.unlock()
	if err := m.fail("SaveRestaurant"); err != nil {
		return err
	}

	if _, ok := m.data.restaurants[r.ID]; !ok {
		return fmt.Errorf("%w: restaurant %d", ErrNotFound, r.ID)
	}
	r.UpdatedAt = time.Now()
	stored := *r
	stored.OpeningHours = nil
	m.data.restaurants[r.ID] = stored
	return nil
}

func (m *Memory) DeactivateRestaurantChildren(ctx context.Context, restaurantID uint) error {
	m.lock()
	defer m.unlock()
	if err := m.fail("DeactivateRestaurantChildren"); err != nil {
		return err
	}

	now := time.Now()
	for id, s := range m.data.sections {
		if s.OwnerID() != restaurantID {
			continue
		}
		for itemID, it := range m.data.items {
			if it.SectionID == id && it.IsActive {
				it.IsActive = false
				it.UpdatedAt = now
				m.data.items[itemID] = it
			}
		}
		if s.IsActive {
			s.IsActive = false
			s.UpdatedAt = now
			m.data.sections[id] = s
		}
	}
	return nil
}

func (m *Memory) ListOpeningHours(ctx context.Context, restaurantID uint) ([]models.OpeningHour, error) {
	m.lock()
	defer m.unlock()
	if err := m.fail("ListOpeningHours"); err != nil {
		return nil, err
	}

	hours := []models.OpeningHour{}
	for k, h := range m.data.hours {
		if k.restaurantID == restaurantID {
			hours = append(hours, h)
		}
	}
	models.SortOpeningHours(hours)
	return hours, nil
}

func (m *Memory) FindOpeningHour(ctx context.Context, restaurantID uint, day models.DayOfWeek) (*models.OpeningHour, error) {
	m.lock()
	defer m.unlock()
	if err := m.fail("FindOpeningHour"); err != nil {
		return nil, err
	}

	h, ok := m.data.hours[hourKey{restaurantID, day}]
	if !ok {
		return nil, fmt.Errorf("%w: opening %d/%s", ErrNotFound, restaurantID, day)
	}
	return &h, nil
}

func (m *Memory) CreateOpeningHours(ctx context.Context, hours []models.OpeningHour) error {
	m.lock()
	defer m.unlock()
	if err := m.fail("CreateOpeningHours"); err != nil {
		return err
	}

	now := time.Now()
	for i := range hours {
		k := hourKey{hours[i].RestaurantID, hours[i].DayOfWeek}
		if _, ok := m.data.restaurants[k.restaurantID]; !ok {
			return fmt.Errorf("%w: restaurant %d", ErrNotFound, k.restaurantID)
		}
		if _, exists := m.data.hours[k]; exists {
			return fmt.Errorf("%w: opening %d/%s", ErrDuplicate, k.restaurantID, k.day)
		}
		hours[i].CreatedAt, hours[i].UpdatedAt = now, now
		m.data.hours[k] = hours[i]
	}
	return nil
}

func (m *Memory) SaveOpeningHour(ctx context.Context, h *models.OpeningHour) error {
	m.lock()
	defer m.unlock()
	if err := m.fail("SaveOpeningHour"); err != nil {
		return err
	}

	now := time.Now()
	k := hourKey{h.RestaurantID, h.DayOfWeek}
	if _, exists := m.data.hours[k]; !exists {
		h.CreatedAt = now
	}
	h.UpdatedAt = now
	m.data.hours[k] = *h
	return nil
}

func (m *Memory) ListActiveSections(ctx context.Context, restaurantID uint) ([]models.Section, error) {
	m.lock()
	defer m.unlock()
	if err := m.fail("ListActiveSections"); err != nil {
		return nil, err
	}

	out := []models.Section{}
	if !m.restaurantActive(restaurantID) {
		return out, nil
	}
	for _, id := range sortedKeys(m.data.sections) {
		s := m.data.sections[id]
		if s.IsActive && s.OwnerID() == restaurantID {
			out = append(out, copySection(s))
		}
	}
	return out, nil
}

func (m *Memory) FindActiveSection(ctx context.Context, id uint) (*models.Section, error) {
	m.lock()
	defer m.unlock()
	if err := m.fail("FindActiveSection"); err != nil {
		return nil, err
	}

	if !m.sectionActive(id) {
		return nil, fmt.Errorf("%w: section %d", ErrNotFound, id)
	}
	s := copySection(m.data.sections[id])
	return &s, nil
}

func (m *Memory) CreateSection(ctx context.Context, s *models.Section) error {
	m.lock()
	defer m.unlock()
	if err := m.fail("CreateSection"); err != nil {
		return err
	}

	if _, ok := m.data.restaurants[s.OwnerID()]; !ok {
		return fmt.Errorf("%w: restaurant %d", ErrNotFound, s.OwnerID())
	}
	m.data.nextSection++
	now := time.Now()
	s.ID = m.data.nextSection
	s.CreatedAt, s.UpdatedAt = now, now
	m.data.sections[s.ID] = copySection(*s)
	return nil
}

func (m *Memory) SaveSection(ctx context.Context, s *models.Section) error {
	m.lock()
	defer m.unlock()
	if err := m.fail("SaveSection"); err != nil {
		return err
	}

	if _, ok := m.data.sections[s.ID]; !ok {
		return fmt.Errorf("%w: section %d", ErrNotFound, s.ID)
	}
	s.UpdatedAt = time.Now()
	m.data.sections[s.ID] = copySection(*s)
	return nil
}

func (m *Memory) DeactivateSectionItems(ctx context.Context, sectionID uint) error {
	m.lock()
	defer m.unlock()
	if err := m.fail("DeactivateSectionItems"); err != nil {
		return err
	}

	now := time.Now()
	for id, it := range m.data.items {
		if it.SectionID == sectionID && it.IsActive {
			it.IsActive = false
			it.UpdatedAt = now
			m.data.items[id] = it
		}
	}
	return nil
}

func (m *Memory) ListActiveItems(ctx context.Context, sectionID uint) ([]models.Item, error) {
	m.lock()
	defer m.unlock()
	if err := m.fail("ListActiveItems"); err != nil {
		return nil, err
	}

	out := []models.Item{}
	if !m.sectionActive(sectionID) {
		return out, nil
	}
	for _, id := range sortedKeys(m.data.items) {
		it := m.data.items[id]
		if it.IsActive && it.SectionID == sectionID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *Memory) FindActiveItem(ctx context.Context, id uint) (*models.Item, error) {
	m.lock()
	defer m.unlock()
	if err := m.fail("FindActiveItem"); err != nil {
		return nil, err
	}

	it, ok := m.data.items[id]
	if !ok || !it.IsActive || !m.sectionActive(it.SectionID) {
		return nil, fmt.Errorf("%w: item %d", ErrNotFound, id)
	}
	return &it, nil
}

func (m *Memory) CreateItem(ctx context.Context, it *models.Item) error {
	m.lock()
	defer m.unlock()
	if err := m.fail("CreateItem"); err != nil {
		return err
	}

	if _, ok := m.data.sections[it.SectionID]; !ok {
		return fmt.Errorf("%w: section %d", ErrNotFound, it.SectionID)
	}
	m.data.nextItem++
	now := time.Now()
	it.ID = m.data.nextItem
	it.CreatedAt, it.UpdatedAt = now, now
	stored := *it
	stored.Section = nil
	m.data.items[it.ID] = stored
	return nil
}

func (m *Memory) SaveItem(ctx context.Context, it *models.Item) error {
	m.lock()
	defer m.unlock()
	if err := m.fail("SaveItem"); err != nil {
		return err
	}

	if _, ok := m.data.items[it.ID]; !ok {
		return fmt.Errorf("%w: item %d", ErrNotFound, it.ID)
	}
	it.UpdatedAt = time.Now()
	stored := *it
	stored.Section = nil
	m.data.items[it.ID] = stored
	return nil
}

func (m *Memory) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.lock()
	defer m.unlock()
	if err := m.fail("FindUserByEmail"); err != nil {
		return nil, err
	}

	for _, u := range m.data.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
}

func (m *Memory) CreateUser(ctx context.Context, u *models.User) error {
	m.lock()
	defer m.unlock()
	if err := m.fail("CreateUser"); err != nil {
		return err
	}

	for _, existing := range m.data.users {
		if existing.Email == u.Email {
			return fmt.Errorf("%w: user %s", ErrDuplicate, u.Email)
		}
	}
	// same hook GORM runs on insert
	if err := u.BeforeCreate(nil); err != nil {
		return err
	}
	m.data.nextUser++
	now := time.Now()
	u.ID = m.data.nextUser
	u.CreatedAt, u.UpdatedAt = now, now
	m.data.users[u.ID] = *u
	return nil
}
