package main

import (
	"context"
	"fmt"

	"github.com/Ar-Dante/Quiz-platform/internal/app"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/google/uuid"
)

// loadScope resolves the company argument and the --as user the same way the
// API resolves a request.
func loadScope(ctx context.Context, a *app.App, companyArg string) (*model.Company, *model.Membership, uuid.UUID, error) {
	companyID, err := uuid.Parse(companyArg)
	if err != nil {
		return nil, nil, uuid.Nil, fmt.Errorf("parsing company id: %w", err)
	}
	caller, err := uuid.Parse(actAs)
	if err != nil {
		return nil, nil, uuid.Nil, fmt.Errorf("parsing --as user id: %w", err)
	}

	company, err := a.Companies.Find(ctx, companyID)
	if err != nil {
		return nil, nil, uuid.Nil, err
	}
	member, err := a.Members.GetMember(ctx, caller, company.ID)
	if err != nil {
		return nil, nil, uuid.Nil, err
	}
	return company, member, caller, nil
}
