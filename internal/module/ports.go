package module

import "context"

// Repository defines the contract for module and module instance storage.
type Repository interface {
	CreateModule(ctx context.Context, m *Module) error
	GetModuleByCode(ctx context.Context, code string) (Module, error)

	// CreateInstance stores the instance and its teaching assignments atomically.
	CreateInstance(ctx context.Context, inst *Instance, professorIDs []int64) error
	AssignProfessor(ctx context.Context, instanceID, professorID int64) error
	GetInstance(ctx context.Context, id int64) (Instance, error)
	ListInstances(ctx context.Context, q ListQuery) ([]Instance, int, error)
	ListInstancesTaughtBy(ctx context.Context, moduleID, professorID int64) ([]int64, error)
}
