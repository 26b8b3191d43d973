package domain

type Todo struct {
	ID        string
	Title     string
	Completed bool
}

// TodoPatch is a partial update. Nil fields are left unchanged.
type TodoPatch struct {
	Title     *string
	Completed *bool
}

func (p TodoPatch) Apply(t Todo) Todo {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	return t
}
