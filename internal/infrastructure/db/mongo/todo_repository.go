package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhub/todo-service/internal/core/domain"
)

const todosCollection = "todos"

// TodoRepository implements ports.TodoRepository on MongoDB. Mutations
// filter on {_id, username} together: an update or delete aimed at another
// user's document matches nothing, which the service layer reports as a
// silent no-op.
type TodoRepository struct {
	coll *mongo.Collection
}

func NewTodoRepository(db *mongo.Database) *TodoRepository {
	return &TodoRepository{coll: db.Collection(todosCollection)}
}

type mongoTodo struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Complete    bool               `bson:"complete"`
	Username    string             `bson:"username"`
}

func (mt *mongoTodo) toDomain() *domain.ToDo {
	return &domain.ToDo{
		ID:          mt.ID.Hex(),
		Name:        mt.Name,
		Description: mt.Description,
		Complete:    mt.Complete,
		Username:    mt.Username,
	}
}

func (r *TodoRepository) Create(ctx context.Context, todo *domain.ToDo) (*domain.ToDo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoTodo{
		Name:        todo.Name,
		Description: todo.Description,
		Complete:    todo.Complete,
		Username:    todo.Username,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}

	created := *todo
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *TodoRepository) FindByOwner(ctx context.Context, username string) ([]domain.ToDo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"username": username})
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer cursor.Close(ctx)

	var todos []domain.ToDo
	for cursor.Next(ctx) {
		var mt mongoTodo
		if err := cursor.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode todo: %w", err)
		}
		todos = append(todos, *mt.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (r *TodoRepository) Update(ctx context.Context, id, username string, fields map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTodoNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	res := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid, "username": username}, bson.M{"$set": set})
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrTodoNotFound
		}
		return fmt.Errorf("update todo: %w", err)
	}
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, id, username string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTodoNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid, "username": username})
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrTodoNotFound
		}
		return fmt.Errorf("delete todo: %w", err)
	}
	return nil
}
