package category

import (
	"context"
	"errors"
	"sort"
	"testing"
)

// MockRepository is a mock implementation of Repository interface
type MockRepository struct {
	CreateFunc  func(ctx context.Context, params CreateParams) (*Category, error)
	GetByIDFunc func(ctx context.Context, id string) (*Category, error)
	ListFunc    func(ctx context.Context, includeArchived bool) ([]*Category, error)
	UpdateFunc  func(ctx context.Context, id string, params UpdateParams) (*Category, error)
	ArchiveFunc func(ctx context.Context, id string) error
}

func (m *MockRepository) Create(ctx context.Context, params CreateParams) (*Category, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockRepository) List(ctx context.Context, includeArchived bool) ([]*Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, includeArchived)
	}
	return nil, nil
}

func (m *MockRepository) Update(ctx context.Context, id string, params UpdateParams) (*Category, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, params)
	}
	return nil, nil
}

func (m *MockRepository) Archive(ctx context.Context, id string) error {
	if m.ArchiveFunc != nil {
		return m.ArchiveFunc(ctx, id)
	}
	return nil
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()
	limit := 200000.0

	tests := []struct {
		name    string
		params  CreateParams
		wantErr error
	}{
		{
			name:   "Success",
			params: CreateParams{Name: "Comida", Emoji: "🍔", Type: "expense", BudgetLimit: &limit},
		},
		{
			name:   "DefaultTypeIsBoth",
			params: CreateParams{Name: "Varios"},
		},
		{
			name:    "EmptyName",
			params:  CreateParams{},
			wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured CreateParams
			repo := &MockRepository{
				CreateFunc: func(ctx context.Context, params CreateParams) (*Category, error) {
					captured = params
					return &Category{
						ID:          params.ID,
						Name:        params.Name,
						Emoji:       params.Emoji,
						Color:       params.Color,
						Type:        params.Type,
						BudgetLimit: params.BudgetLimit,
					}, nil
				},
			}
			svc := NewService(repo)

			c, err := svc.CreateCategory(ctx, tt.params)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CreateCategory() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateCategory() unexpected error: %v", err)
			}
			if c.ID == "" {
				t.Error("CreateCategory() did not generate an ID")
			}
			if tt.params.Type == "" && captured.Type != DefaultType {
				t.Errorf("Type default = %q, want %q", captured.Type, DefaultType)
			}
		})
	}
}

// A category tagged "expense" may still be attached to income transactions;
// the type is a hint, so the service must accept any string.
func TestCreateCategory_TypeNotEnforced(t *testing.T) {
	repo := &MockRepository{
		CreateFunc: func(ctx context.Context, params CreateParams) (*Category, error) {
			return &Category{ID: params.ID, Type: params.Type}, nil
		},
	}
	svc := NewService(repo)

	c, err := svc.CreateCategory(context.Background(), CreateParams{Name: "Sueldo", Type: "income"})
	if err != nil {
		t.Fatalf("CreateCategory() unexpected error: %v", err)
	}
	if c.Type != "income" {
		t.Errorf("Type = %q, want income", c.Type)
	}
}

func TestArchiveCategory_Idempotent(t *testing.T) {
	calls := 0
	repo := &MockRepository{
		ArchiveFunc: func(ctx context.Context, id string) error {
			calls++
			return nil
		},
	}
	svc := NewService(repo)

	for i := 0; i < 2; i++ {
		if err := svc.ArchiveCategory(context.Background(), "c-1"); err != nil {
			t.Fatalf("ArchiveCategory() call %d error: %v", i+1, err)
		}
	}
	if calls != 2 {
		t.Errorf("expected 2 archive calls, got %d", calls)
	}
}

// sortedFakeRepo is a minimal in-memory Repository honoring the listing
// contract: categories come back ordered by name, not by creation order.
type sortedFakeRepo struct {
	MockRepository
	cats []*Category
}

func (f *sortedFakeRepo) Create(ctx context.Context, params CreateParams) (*Category, error) {
	c := &Category{ID: params.ID, Name: params.Name, Emoji: params.Emoji, Type: params.Type}
	f.cats = append(f.cats, c)
	return c, nil
}

func (f *sortedFakeRepo) List(ctx context.Context, includeArchived bool) ([]*Category, error) {
	out := make([]*Category, len(f.cats))
	copy(out, f.cats)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func TestListCategories_OrderedByName(t *testing.T) {
	ctx := context.Background()
	repo := &sortedFakeRepo{}
	svc := NewService(repo)

	for _, name := range []string{"Transporte", "Comida", "Salud"} {
		if _, err := svc.CreateCategory(ctx, CreateParams{Name: name}); err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
	}

	cats, err := svc.ListCategories(ctx, false)
	if err != nil {
		t.Fatalf("ListCategories() error: %v", err)
	}
	got := make([]string, len(cats))
	for i, c := range cats {
		got[i] = c.Name
	}
	want := []string{"Comida", "Salud", "Transporte"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ListCategories() order = %v, want %v", got, want)
		}
	}
}
