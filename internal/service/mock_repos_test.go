package service

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"inpyeon/backend/internal/model"
	"inpyeon/backend/internal/repository"
)

// ── Mock TraineeRepository ──

type mockTraineeRepo struct {
	trainees map[int64]*model.Trainee
	nextID   int64
	letters  *mockLetterRepo // 级联删除模拟
	failWith error           // 非 nil 时所有操作返回该错误
}

func newMockTraineeRepo() *mockTraineeRepo {
	return &mockTraineeRepo{trainees: make(map[int64]*model.Trainee), nextID: 1}
}

func (m *mockTraineeRepo) Create(_ context.Context, trainee *model.Trainee) error {
	if m.failWith != nil {
		return m.failWith
	}
	// 与存储层唯一约束一致的裁决顺序不作保证，先到先判
	for _, t := range m.trainees {
		if t.UserID == trainee.UserID {
			return repository.ErrDuplicateUserID
		}
		if t.Name == trainee.Name && t.Birth == trainee.Birth && t.EnterDate == trainee.EnterDate {
			return repository.ErrDuplicateIdentity
		}
	}
	trainee.ID = m.nextID
	m.nextID++
	m.trainees[trainee.ID] = trainee
	return nil
}

func (m *mockTraineeRepo) GetByID(_ context.Context, id int64) (*model.Trainee, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if t, ok := m.trainees[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTraineeRepo) GetByUserID(_ context.Context, userid string) (*model.Trainee, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, t := range m.trainees {
		if t.UserID == userid {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTraineeRepo) FindByIdentity(_ context.Context, name, birth, enterDate string) (*model.Trainee, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var found *model.Trainee
	for _, t := range m.trainees {
		if t.Name == name && t.Birth == birth && t.EnterDate == enterDate {
			if found == nil || t.ID < found.ID {
				found = t
			}
		}
	}
	if found == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return found, nil
}

func (m *mockTraineeRepo) ExistsUserID(_ context.Context, userid string) (bool, error) {
	if m.failWith != nil {
		return false, m.failWith
	}
	for _, t := range m.trainees {
		if t.UserID == userid {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockTraineeRepo) DeleteAll(_ context.Context) (int64, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	deleted := int64(len(m.trainees))
	m.trainees = make(map[int64]*model.Trainee)
	// 级联：信件一并清空
	if m.letters != nil {
		m.letters.letters = make(map[int64]*model.Letter)
	}
	return deleted, nil
}

// ── Mock LetterRepository ──

var errFKViolation = errors.New("违反外键约束")

type mockLetterRepo struct {
	letters  map[int64]*model.Letter
	nextID   int64
	trainees *mockTraineeRepo // 非 nil 时校验收信人存在（外键模拟）
	failWith error
}

func newMockLetterRepo() *mockLetterRepo {
	return &mockLetterRepo{letters: make(map[int64]*model.Letter), nextID: 1}
}

func (m *mockLetterRepo) Create(_ context.Context, letter *model.Letter) error {
	if m.failWith != nil {
		return m.failWith
	}
	if m.trainees != nil {
		if _, ok := m.trainees.trainees[letter.TraineeID]; !ok {
			return errFKViolation
		}
	}
	letter.ID = m.nextID
	m.nextID++
	m.letters[letter.ID] = letter
	return nil
}

func (m *mockLetterRepo) GetByID(_ context.Context, id int64) (*model.Letter, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if l, ok := m.letters[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLetterRepo) ListByTrainee(_ context.Context, traineeID int64) ([]model.Letter, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var result []model.Letter
	for _, l := range m.letters {
		if l.TraineeID == traineeID {
			result = append(result, *l)
		}
	}
	// created_at 降序（最新在前）
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockLetterRepo) Delete(_ context.Context, id int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.letters[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.letters, id)
	return nil
}

// newMockRepository 组装带外键/级联模拟的聚合仓储
func newMockRepository() (*repository.Repository, *mockTraineeRepo, *mockLetterRepo) {
	tr := newMockTraineeRepo()
	lr := newMockLetterRepo()
	tr.letters = lr
	lr.trainees = tr
	return &repository.Repository{Trainee: tr, Letter: lr}, tr, lr
}
