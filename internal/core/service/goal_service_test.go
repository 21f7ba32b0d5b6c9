package service

import (
	"context"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/northstar/goals-api/internal/core/domain"
	"github.com/northstar/goals-api/internal/core/ports"
)

func testLogger() zerolog.Logger { return zerolog.Nop() }

type stubGoalRepo struct {
	goals  map[uint]*domain.Goal
	nextID uint
}

func newStubGoalRepo() *stubGoalRepo {
	return &stubGoalRepo{goals: make(map[uint]*domain.Goal)}
}

func cloneGoal(g *domain.Goal) *domain.Goal {
	if g == nil {
		return nil
	}
	clone := *g
	return &clone
}

func (r *stubGoalRepo) ListByOwner(_ context.Context, ownerID uint) ([]domain.Goal, error) {
	var out []domain.Goal
	for _, g := range r.goals {
		if g.UserID == ownerID {
			out = append(out, *g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *stubGoalRepo) Create(_ context.Context, goal *domain.Goal) (*domain.Goal, error) {
	r.nextID++
	copy := cloneGoal(goal)
	copy.ID = r.nextID
	r.goals[copy.ID] = cloneGoal(copy)
	return cloneGoal(copy), nil
}

func (r *stubGoalRepo) FindOwned(_ context.Context, id, ownerID uint) (*domain.Goal, error) {
	g, ok := r.goals[id]
	if !ok || g.UserID != ownerID {
		return nil, domain.ErrGoalNotFound
	}
	return cloneGoal(g), nil
}

func (r *stubGoalRepo) Update(_ context.Context, goal *domain.Goal) (*domain.Goal, error) {
	r.goals[goal.ID] = cloneGoal(goal)
	return cloneGoal(goal), nil
}

func (r *stubGoalRepo) Delete(_ context.Context, goal *domain.Goal) error {
	if _, ok := r.goals[goal.ID]; !ok {
		return domain.ErrGoalNotFound
	}
	delete(r.goals, goal.ID)
	return nil
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func seedGoal(t *testing.T, svc *GoalService, ownerID uint, name string) *domain.Goal {
	t.Helper()
	g, err := svc.Create(context.Background(), ownerID, ports.CreateGoalInput{
		Name:          name,
		TargetAmount:  dec("1000.00"),
		TargetDate:    "2025-12-31",
		CurrentAmount: dec("0"),
	})
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}
	return g
}

func TestGoalService_Create_AssignsOwner(t *testing.T) {
	repo := newStubGoalRepo()
	svc := NewGoalService(repo, testLogger())

	g := seedGoal(t, svc, 7, "Emergency fund")
	if g.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if g.UserID != 7 {
		t.Fatalf("expected owner 7, got %d", g.UserID)
	}
	if !g.TargetAmount.Equal(dec("1000.00")) {
		t.Fatalf("unexpected target amount: %s", g.TargetAmount)
	}
}

func TestGoalService_List_ScopedToOwner(t *testing.T) {
	repo := newStubGoalRepo()
	svc := NewGoalService(repo, testLogger())

	seedGoal(t, svc, 1, "Car")
	seedGoal(t, svc, 2, "House")
	seedGoal(t, svc, 1, "Vacation")

	goals, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(goals))
	}
	for _, g := range goals {
		if g.UserID != 1 {
			t.Fatalf("goal %d leaked from owner %d", g.ID, g.UserID)
		}
	}
	if goals[0].ID < goals[1].ID {
		t.Fatalf("expected newest id first, got %d before %d", goals[0].ID, goals[1].ID)
	}
}

func TestGoalService_Update_Partial(t *testing.T) {
	repo := newStubGoalRepo()
	svc := NewGoalService(repo, testLogger())

	g := seedGoal(t, svc, 1, "Emergency fund")

	amount := dec("250.50")
	updated, err := svc.Update(context.Background(), 1, g.ID, ports.UpdateGoalInput{
		CurrentAmount: &amount,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if !updated.CurrentAmount.Equal(amount) {
		t.Fatalf("expected current amount 250.50, got %s", updated.CurrentAmount)
	}
	if updated.Name != "Emergency fund" {
		t.Fatalf("omitted name was modified: %q", updated.Name)
	}
	if !updated.TargetAmount.Equal(dec("1000.00")) {
		t.Fatalf("omitted target amount was modified: %s", updated.TargetAmount)
	}
	if updated.TargetDate != "2025-12-31" {
		t.Fatalf("omitted target date was modified: %q", updated.TargetDate)
	}
}

func TestGoalService_Update_ForeignLooksLikeMissing(t *testing.T) {
	repo := newStubGoalRepo()
	svc := NewGoalService(repo, testLogger())

	g := seedGoal(t, svc, 1, "Car")

	name := "Hijacked"
	_, errForeign := svc.Update(context.Background(), 2, g.ID, ports.UpdateGoalInput{Name: &name})
	_, errMissing := svc.Update(context.Background(), 2, 9999, ports.UpdateGoalInput{Name: &name})

	if errForeign != domain.ErrGoalNotFound {
		t.Fatalf("expected ErrGoalNotFound for foreign goal, got %v", errForeign)
	}
	if errMissing != errForeign {
		t.Fatalf("foreign and missing goals must be indistinguishable: %v vs %v", errForeign, errMissing)
	}

	// The real owner still sees the goal untouched.
	kept, err := svc.Update(context.Background(), 1, g.ID, ports.UpdateGoalInput{})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if kept.Name != "Car" {
		t.Fatalf("foreign update leaked through: %q", kept.Name)
	}
}

func TestGoalService_Delete_EchoesGoal(t *testing.T) {
	repo := newStubGoalRepo()
	svc := NewGoalService(repo, testLogger())

	g := seedGoal(t, svc, 1, "Car")

	deleted, err := svc.Delete(context.Background(), 1, g.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if deleted.ID != g.ID || deleted.Name != "Car" {
		t.Fatalf("unexpected echoed goal: %+v", deleted)
	}

	goals, _ := svc.List(context.Background(), 1)
	if len(goals) != 0 {
		t.Fatalf("expected empty list after delete, got %d", len(goals))
	}
}

func TestGoalService_Delete_ForeignLooksLikeMissing(t *testing.T) {
	repo := newStubGoalRepo()
	svc := NewGoalService(repo, testLogger())

	g := seedGoal(t, svc, 1, "Car")

	_, errForeign := svc.Delete(context.Background(), 2, g.ID)
	_, errMissing := svc.Delete(context.Background(), 2, 9999)

	if errForeign != domain.ErrGoalNotFound || errMissing != errForeign {
		t.Fatalf("foreign and missing deletes must be indistinguishable: %v vs %v", errForeign, errMissing)
	}

	if _, err := repo.FindOwned(context.Background(), g.ID, 1); err != nil {
		t.Fatalf("goal should survive a foreign delete: %v", err)
	}
}
