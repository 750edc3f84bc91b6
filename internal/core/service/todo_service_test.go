package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/taskhub/todo-service/internal/core/domain"
	"github.com/taskhub/todo-service/internal/core/ports"
)

// stubTodoRepo mimics the mongo repository's matching semantics: mutations
// match on id AND owner together, and a miss reports ErrTodoNotFound.
type stubTodoRepo struct {
	items  map[string]*domain.ToDo
	nextID int
}

func newStubTodoRepo() *stubTodoRepo {
	return &stubTodoRepo{items: make(map[string]*domain.ToDo)}
}

func (r *stubTodoRepo) Create(_ context.Context, todo *domain.ToDo) (*domain.ToDo, error) {
	r.nextID++
	created := *todo
	created.ID = fmt.Sprintf("todo-%d", r.nextID)
	stored := created
	r.items[created.ID] = &stored
	return &created, nil
}

func (r *stubTodoRepo) FindByOwner(_ context.Context, username string) ([]domain.ToDo, error) {
	var out []domain.ToDo
	for _, item := range r.items {
		if item.Username == username {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *stubTodoRepo) Update(_ context.Context, id, username string, fields map[string]any) error {
	item, ok := r.items[id]
	if !ok || item.Username != username {
		return domain.ErrTodoNotFound
	}
	if name, ok := fields["name"].(string); ok {
		item.Name = name
	}
	if desc, ok := fields["description"].(string); ok {
		item.Description = desc
	}
	if complete, ok := fields["complete"].(bool); ok {
		item.Complete = complete
	}
	return nil
}

func (r *stubTodoRepo) Delete(_ context.Context, id, username string) error {
	item, ok := r.items[id]
	if !ok || item.Username != username {
		return domain.ErrTodoNotFound
	}
	delete(r.items, id)
	return nil
}

func TestTodoService_Create_OwnerForced(t *testing.T) {
	repo := newStubTodoRepo()
	svc := NewTodoService(repo, zerolog.Nop())

	todo, err := svc.Create(context.Background(), "alice", ports.TodoInput{
		Name:        "buy milk",
		Description: "2%",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if todo.Username != "alice" {
		t.Fatalf("expected owner alice, got %q", todo.Username)
	}
	if todo.ID == "" {
		t.Fatalf("expected persistence-assigned id")
	}
}

func TestTodoService_List_OwnerScoped(t *testing.T) {
	repo := newStubTodoRepo()
	svc := NewTodoService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), "alice", ports.TodoInput{Name: "buy milk", Description: "2%"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Bob sees none of alice's items.
	bobItems, err := svc.List(context.Background(), "bob")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(bobItems) != 0 {
		t.Fatalf("expected empty list for bob, got %d items", len(bobItems))
	}

	aliceItems, err := svc.List(context.Background(), "alice")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(aliceItems) != 1 || aliceItems[0].Name != "buy milk" {
		t.Fatalf("unexpected items for alice: %+v", aliceItems)
	}
}

func TestTodoService_Update_ForeignOwnerIsSilentNoop(t *testing.T) {
	repo := newStubTodoRepo()
	svc := NewTodoService(repo, zerolog.Nop())

	todo, _ := svc.Create(context.Background(), "alice", ports.TodoInput{Name: "buy milk", Description: "2%"})

	// Bob targets alice's item with his own identity: no error, no mutation.
	err := svc.Update(context.Background(), todo.ID, "bob", ports.TodoInput{
		Name:     "hijacked",
		Complete: true,
	})
	if err != nil {
		t.Fatalf("foreign update must report success, got %v", err)
	}

	stored := repo.items[todo.ID]
	if stored.Name != "buy milk" || stored.Complete {
		t.Fatalf("foreign update must not mutate the item: %+v", stored)
	}
}

func TestTodoService_Update_Owner(t *testing.T) {
	repo := newStubTodoRepo()
	svc := NewTodoService(repo, zerolog.Nop())

	todo, _ := svc.Create(context.Background(), "alice", ports.TodoInput{Name: "buy milk", Description: "2%"})

	err := svc.Update(context.Background(), todo.ID, "alice", ports.TodoInput{
		Name:        "buy milk",
		Description: "2%",
		Complete:    true,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !repo.items[todo.ID].Complete {
		t.Fatalf("owner update must mutate the item")
	}
}

func TestTodoService_Delete_ForeignOwnerIsSilentNoop(t *testing.T) {
	repo := newStubTodoRepo()
	svc := NewTodoService(repo, zerolog.Nop())

	todo, _ := svc.Create(context.Background(), "alice", ports.TodoInput{Name: "buy milk"})

	if err := svc.Delete(context.Background(), todo.ID, "bob"); err != nil {
		t.Fatalf("foreign delete must report success, got %v", err)
	}
	if _, ok := repo.items[todo.ID]; !ok {
		t.Fatalf("foreign delete must not remove the item")
	}

	if err := svc.Delete(context.Background(), todo.ID, "alice"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, ok := repo.items[todo.ID]; ok {
		t.Fatalf("owner delete must remove the item")
	}
}

func TestTodoService_Delete_MissingIsSilentNoop(t *testing.T) {
	repo := newStubTodoRepo()
	svc := NewTodoService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), "never-existed", "alice"); err != nil {
		t.Fatalf("deleting a missing item must report success, got %v", err)
	}
}
