package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/Msahu05/smart-campus-comms/internal/model"
	"github.com/Msahu05/smart-campus-comms/internal/repository"
)

// ── Mock AuthUserRepository ──

type mockAuthUserRepo struct {
	users map[string]*model.AuthUser // key: id 与 "email:"+email 双索引
	seq   int

	failCreate bool
}

func newMockAuthUserRepo() *mockAuthUserRepo {
	return &mockAuthUserRepo{users: make(map[string]*model.AuthUser)}
}

func (m *mockAuthUserRepo) Create(_ context.Context, user *model.AuthUser) error {
	if m.failCreate {
		return fmt.Errorf("mock: create 失败")
	}
	if user.ID == "" {
		m.seq++
		user.ID = fmt.Sprintf("user-%d", m.seq)
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	m.users["email:"+user.Email] = user
	return nil
}

func (m *mockAuthUserRepo) GetByID(_ context.Context, id string) (*model.AuthUser, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAuthUserRepo) GetByEmail(_ context.Context, email string) (*model.AuthUser, error) {
	if u, ok := m.users["email:"+email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAuthUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (m *mockAuthUserRepo) Delete(_ context.Context, id string) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.users, "email:"+u.Email)
	delete(m.users, id)
	return nil
}

// ── Mock ProfileRepository ──

type mockProfileRepo struct {
	profiles map[string]*model.Profile // key: user_id
	seq      int

	failDelete bool
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[string]*model.Profile)}
}

func (m *mockProfileRepo) Create(_ context.Context, profile *model.Profile) error {
	if profile.ID == "" {
		m.seq++
		profile.ID = fmt.Sprintf("profile-%d", m.seq)
	}
	m.profiles[profile.UserID] = profile
	return nil
}

func (m *mockProfileRepo) GetByUserID(_ context.Context, userID string) (*model.Profile, error) {
	if p, ok := m.profiles[userID]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfileRepo) ListByUserIDs(_ context.Context, userIDs []string) ([]model.Profile, error) {
	var result []model.Profile
	for _, id := range userIDs {
		if p, ok := m.profiles[id]; ok {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockProfileRepo) ListAll(_ context.Context) ([]model.Profile, error) {
	var result []model.Profile
	for _, p := range m.profiles {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UserID < result[j].UserID })
	return result, nil
}

func (m *mockProfileRepo) Update(_ context.Context, profile *model.Profile) error {
	m.profiles[profile.UserID] = profile
	return nil
}

func (m *mockProfileRepo) DeleteByUserID(_ context.Context, userID string) error {
	if m.failDelete {
		return fmt.Errorf("mock: delete 失败")
	}
	delete(m.profiles, userID)
	return nil
}

// ── Mock UserRoleRepository ──

type mockUserRoleRepo struct {
	roles []*model.UserRole
	seq   int
}

func newMockUserRoleRepo() *mockUserRoleRepo {
	return &mockUserRoleRepo{}
}

func (m *mockUserRoleRepo) Create(_ context.Context, role *model.UserRole) error {
	if role.ID == "" {
		m.seq++
		role.ID = fmt.Sprintf("role-%d", m.seq)
	}
	m.roles = append(m.roles, role)
	return nil
}

func (m *mockUserRoleRepo) ListByUserID(_ context.Context, userID string) ([]model.UserRole, error) {
	var result []model.UserRole
	for _, r := range m.roles {
		if r.UserID == userID {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockUserRoleRepo) ListByRole(_ context.Context, role string) ([]model.UserRole, error) {
	var result []model.UserRole
	for _, r := range m.roles {
		if r.Role == role {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockUserRoleRepo) ListAll(_ context.Context) ([]model.UserRole, error) {
	var result []model.UserRole
	for _, r := range m.roles {
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockUserRoleRepo) CountByRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, r := range m.roles {
		if r.Role == role {
			n++
		}
	}
	return n, nil
}

func (m *mockUserRoleRepo) DeleteByUserID(_ context.Context, userID string) error {
	kept := m.roles[:0]
	for _, r := range m.roles {
		if r.UserID != userID {
			kept = append(kept, r)
		}
	}
	m.roles = kept
	return nil
}

// ── Mock QueryRepository ──

type mockQueryRepo struct {
	queries map[string]*model.Query
	seq     int
}

func newMockQueryRepo() *mockQueryRepo {
	return &mockQueryRepo{queries: make(map[string]*model.Query)}
}

func (m *mockQueryRepo) Create(_ context.Context, query *model.Query) error {
	if query.ID == "" {
		m.seq++
		query.ID = fmt.Sprintf("query-%d", m.seq)
	}
	query.CreatedAt = time.Now()
	query.UpdatedAt = query.CreatedAt
	m.queries[query.ID] = query
	return nil
}

func (m *mockQueryRepo) GetByID(_ context.Context, id string) (*model.Query, error) {
	if q, ok := m.queries[id]; ok {
		return q, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockQueryRepo) listWhere(pred func(*model.Query) bool) []model.Query {
	var result []model.Query
	for _, q := range m.queries {
		if pred(q) {
			result = append(result, *q)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (m *mockQueryRepo) ListByStudent(_ context.Context, studentID string) ([]model.Query, error) {
	return m.listWhere(func(q *model.Query) bool { return q.StudentID == studentID }), nil
}

func (m *mockQueryRepo) ListByProfessor(_ context.Context, professorID string) ([]model.Query, error) {
	return m.listWhere(func(q *model.Query) bool { return q.ProfessorID == professorID }), nil
}

func (m *mockQueryRepo) ListByStatus(_ context.Context, status string) ([]model.Query, error) {
	return m.listWhere(func(q *model.Query) bool { return q.Status == status }), nil
}

func (m *mockQueryRepo) ListAll(_ context.Context) ([]model.Query, error) {
	return m.listWhere(func(*model.Query) bool { return true }), nil
}

func (m *mockQueryRepo) Update(_ context.Context, query *model.Query) error {
	if _, ok := m.queries[query.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	query.UpdatedAt = time.Now()
	m.queries[query.ID] = query
	return nil
}

func (m *mockQueryRepo) CountByProfessor(_ context.Context, professorID string) (int64, error) {
	return int64(len(m.listWhere(func(q *model.Query) bool { return q.ProfessorID == professorID }))), nil
}

// ── Mock OfficeHourRepository ──

type mockOfficeHourRepo struct {
	slots map[string]*model.OfficeHour
	seq   int
}

func newMockOfficeHourRepo() *mockOfficeHourRepo {
	return &mockOfficeHourRepo{slots: make(map[string]*model.OfficeHour)}
}

func (m *mockOfficeHourRepo) Create(_ context.Context, slot *model.OfficeHour) error {
	if slot.ID == "" {
		m.seq++
		slot.ID = fmt.Sprintf("slot-%d", m.seq)
	}
	m.slots[slot.ID] = slot
	return nil
}

func (m *mockOfficeHourRepo) GetByID(_ context.Context, id string) (*model.OfficeHour, error) {
	if s, ok := m.slots[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOfficeHourRepo) ListByProfessor(_ context.Context, professorID string) ([]model.OfficeHour, error) {
	var result []model.OfficeHour
	for _, s := range m.slots {
		if s.ProfessorID == professorID {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockOfficeHourRepo) ListAvailable(_ context.Context, professorID, dayOfWeek string) ([]model.OfficeHour, error) {
	var result []model.OfficeHour
	for _, s := range m.slots {
		if s.ProfessorID == professorID && s.DayOfWeek == dayOfWeek && s.IsAvailable {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockOfficeHourRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.slots[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.slots, id)
	return nil
}

// ── Mock AppointmentRepository ──

type mockAppointmentRepo struct {
	appts map[string]*model.Appointment
	seq   int
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{appts: make(map[string]*model.Appointment)}
}

func (m *mockAppointmentRepo) Create(_ context.Context, appt *model.Appointment) error {
	if appt.ID == "" {
		m.seq++
		appt.ID = fmt.Sprintf("appt-%d", m.seq)
	}
	appt.CreatedAt = time.Now()
	m.appts[appt.ID] = appt
	return nil
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, id string) (*model.Appointment, error) {
	if a, ok := m.appts[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAppointmentRepo) listWhere(pred func(*model.Appointment) bool) []model.Appointment {
	var result []model.Appointment
	for _, a := range m.appts {
		if pred(a) {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (m *mockAppointmentRepo) ListByStudent(_ context.Context, studentID string) ([]model.Appointment, error) {
	return m.listWhere(func(a *model.Appointment) bool { return a.StudentID == studentID }), nil
}

func (m *mockAppointmentRepo) ListByProfessor(_ context.Context, professorID string) ([]model.Appointment, error) {
	return m.listWhere(func(a *model.Appointment) bool { return a.ProfessorID == professorID }), nil
}

func (m *mockAppointmentRepo) ListByProfessorAndStatus(_ context.Context, professorID, status string) ([]model.Appointment, error) {
	return m.listWhere(func(a *model.Appointment) bool {
		return a.ProfessorID == professorID && a.Status == status
	}), nil
}

func (m *mockAppointmentRepo) ListAll(_ context.Context) ([]model.Appointment, error) {
	return m.listWhere(func(*model.Appointment) bool { return true }), nil
}

func (m *mockAppointmentRepo) UpdateStatus(_ context.Context, id, status string) error {
	a, ok := m.appts[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Status = status
	return nil
}

func (m *mockAppointmentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.appts)), nil
}

func (m *mockAppointmentRepo) CountByProfessor(_ context.Context, professorID string) (int64, error) {
	return int64(len(m.listWhere(func(a *model.Appointment) bool { return a.ProfessorID == professorID }))), nil
}

// ── Mock RegistrationKeyRepository ──

type mockRegistrationKeyRepo struct {
	keys map[string]*model.RegistrationKey // key: id 与 "key:"+registration_key 双索引
	seq  int
}

func newMockRegistrationKeyRepo() *mockRegistrationKeyRepo {
	return &mockRegistrationKeyRepo{keys: make(map[string]*model.RegistrationKey)}
}

func (m *mockRegistrationKeyRepo) Create(_ context.Context, key *model.RegistrationKey) error {
	if key.ID == "" {
		m.seq++
		key.ID = fmt.Sprintf("key-%d", m.seq)
	}
	key.CreatedAt = time.Now()
	m.keys[key.ID] = key
	m.keys["key:"+key.RegistrationKey] = key
	return nil
}

func (m *mockRegistrationKeyRepo) ListByCollege(_ context.Context, college string) ([]model.RegistrationKey, error) {
	var result []model.RegistrationKey
	seen := make(map[string]bool)
	for _, k := range m.keys {
		if k.College == college && !seen[k.ID] {
			seen[k.ID] = true
			result = append(result, *k)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockRegistrationKeyRepo) GetByKey(_ context.Context, key string) (*model.RegistrationKey, error) {
	if k, ok := m.keys["key:"+key]; ok {
		return k, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRegistrationKeyRepo) GetByKeyForUpdate(ctx context.Context, key string) (*model.RegistrationKey, error) {
	return m.GetByKey(ctx, key)
}

func (m *mockRegistrationKeyRepo) MarkUsed(_ context.Context, keyID, userID string) error {
	k, ok := m.keys[keyID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	k.IsUsed = true
	k.UsedBy = &userID
	k.UsedAt = &now
	return nil
}

// ── Mock AIChatRepository ──

type mockAIChatRepo struct {
	chats []*model.AIChat
	seq   int
}

func newMockAIChatRepo() *mockAIChatRepo {
	return &mockAIChatRepo{}
}

func (m *mockAIChatRepo) Create(_ context.Context, chat *model.AIChat) error {
	if chat.ID == "" {
		m.seq++
		chat.ID = fmt.Sprintf("chat-%d", m.seq)
	}
	chat.CreatedAt = time.Now()
	m.chats = append(m.chats, chat)
	return nil
}

func (m *mockAIChatRepo) ListByUser(_ context.Context, userID string) ([]model.AIChat, error) {
	var result []model.AIChat
	for _, c := range m.chats {
		if c.UserID == userID {
			result = append(result, *c)
		}
	}
	return result, nil
}

// ── 测试用 Repository 聚合 ──

// newMockRepository db 为 nil，Transaction 原地执行 fn
func newMockRepository() *repository.Repository {
	return &repository.Repository{
		AuthUser:        newMockAuthUserRepo(),
		Profile:         newMockProfileRepo(),
		UserRole:        newMockUserRoleRepo(),
		Query:           newMockQueryRepo(),
		OfficeHour:      newMockOfficeHourRepo(),
		Appointment:     newMockAppointmentRepo(),
		RegistrationKey: newMockRegistrationKeyRepo(),
		AIChat:          newMockAIChatRepo(),
	}
}
