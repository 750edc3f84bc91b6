package domain

// ToDo is a single task record. Username is the owning account; it is the
// sole filter key for visibility and mutation — there is no other ownership
// relationship.
type ToDo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Complete    bool   `json:"complete"`
	Username    string `json:"username"`
}
