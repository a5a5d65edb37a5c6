package usecase

import (
	"context"
	"errors"

	"hr-assistant/internal/chat"
	"hr-assistant/internal/hrdata"
	"hr-assistant/internal/model"
)

// Employees returns the full directory.
func (uc *implUseCase) Employees(ctx context.Context) ([]model.Employee, error) {
	employees, err := uc.store.Employees()
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Employees: %v", err)
		return nil, err
	}
	return employees, nil
}

// Employee returns one directory entry.
func (uc *implUseCase) Employee(ctx context.Context, id string) (model.Employee, error) {
	emp, err := uc.store.Employee(id)
	if err != nil {
		if errors.Is(err, hrdata.ErrEmployeeNotFound) {
			return model.Employee{}, chat.ErrEmployeeNotFound
		}
		uc.l.Errorf(ctx, "chat.usecase.Employee: %v", err)
		return model.Employee{}, err
	}
	return emp, nil
}

// Agents lists the orchestrator followed by every registered agent in
// registration order.
func (uc *implUseCase) Agents(ctx context.Context) []chat.AgentInfo {
	agents := uc.registry.All()

	out := make([]chat.AgentInfo, 0, len(agents)+1)
	out = append(out, chat.AgentInfo{
		Name:        uc.orc.Name(),
		Description: uc.orc.Description(),
		Type:        "router",
	})
	for _, a := range agents {
		out = append(out, chat.AgentInfo{
			Name:        a.Name(),
			Description: a.Description(),
			Keywords:    a.Keywords(),
		})
	}
	return out
}
