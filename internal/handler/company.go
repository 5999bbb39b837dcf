// internal/handler/company.go
package handler

import (
	"net/http"

	"github.com/Ar-Dante/Quiz-platform/internal/service"
	"github.com/google/uuid"
)

type CompanyHandler struct {
	companyScope
	workflow *service.WorkflowService
}

func NewCompanyHandler(companies *service.CompanyService, members *service.MembershipService, workflow *service.WorkflowService) *CompanyHandler {
	return &CompanyHandler{
		companyScope: companyScope{companies: companies, members: members},
		workflow:     workflow,
	}
}

func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, err := caller(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	var input service.CompanyInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, err)
		return
	}

	company, err := h.companies.Create(r.Context(), input, callerID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, company)
}

func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	callerID, err := caller(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	page := pageFrom(r)
	companies, err := h.companies.List(r.Context(), callerID, page)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse(companies, page))
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	callerID, err := caller(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	company, err := h.companies.Get(r.Context(), id, callerID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID, err := caller(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	var input service.CompanyInput
	if err := decodeJSON(r, &input); err != nil {
		handleError(w, r, err)
		return
	}
	company, err := h.companies.Update(r.Context(), id, input, callerID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, err := caller(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := h.companies.Delete(r.Context(), id, callerID); err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, message("Company deleted"))
}

func (h *CompanyHandler) Members(w http.ResponseWriter, r *http.Request) {
	h.listMembers(w, r, false)
}

func (h *CompanyHandler) Admins(w http.ResponseWriter, r *http.Request) {
	h.listMembers(w, r, true)
}

func (h *CompanyHandler) listMembers(w http.ResponseWriter, r *http.Request, admins bool) {
	sc, err := h.fromPath(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if !sc.company.VisibleTo(sc.caller) && sc.member == nil {
		respondWithError(w, http.StatusNotFound, "company not found")
		return
	}

	page := pageFrom(r)
	list := h.members.ListMembers
	if admins {
		list = h.members.ListAdmins
	}
	members, err := list(r.Context(), sc.company.ID, page)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse(members, page))
}

func (h *CompanyHandler) Exit(w http.ResponseWriter, r *http.Request) {
	sc, err := h.fromPath(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := h.members.ExitCompany(r.Context(), sc.caller, sc.company, sc.caller); err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, message("You left the company"))
}

// userAction runs an operation on the {user} path parameter of a company.
func (h *CompanyHandler) userAction(w http.ResponseWriter, r *http.Request, done string, op func(sc *scope, user uuid.UUID) error) {
	sc, err := h.fromPath(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	userID, err := uuidParam(r, "user")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := op(sc, userID); err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, message(done))
}

// selfAction runs an operation where the caller is the user being acted on.
func (h *CompanyHandler) selfAction(w http.ResponseWriter, r *http.Request, done string, op func(sc *scope, user uuid.UUID) error) {
	sc, err := h.fromPath(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := op(sc, sc.caller); err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, message(done))
}

func (h *CompanyHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	h.userAction(w, r, "Member removed", func(sc *scope, user uuid.UUID) error {
		return h.members.RemoveMember(r.Context(), user, sc.company, sc.caller)
	})
}

func (h *CompanyHandler) PromoteAdmin(w http.ResponseWriter, r *http.Request) {
	h.userAction(w, r, "Member promoted to admin", func(sc *scope, user uuid.UUID) error {
		return h.members.PromoteAdmin(r.Context(), user, sc.company, sc.caller)
	})
}

func (h *CompanyHandler) DemoteAdmin(w http.ResponseWriter, r *http.Request) {
	h.userAction(w, r, "Admin demoted", func(sc *scope, user uuid.UUID) error {
		return h.members.DemoteAdmin(r.Context(), user, sc.company, sc.caller)
	})
}

func (h *CompanyHandler) SendInvitation(w http.ResponseWriter, r *http.Request) {
	h.userAction(w, r, "Invitation sent", func(sc *scope, user uuid.UUID) error {
		_, err := h.workflow.SendInvitation(r.Context(), user, sc.company, sc.caller)
		return err
	})
}

func (h *CompanyHandler) CancelInvitation(w http.ResponseWriter, r *http.Request) {
	h.userAction(w, r, "Invitation canceled", func(sc *scope, user uuid.UUID) error {
		return h.workflow.CancelInvitation(r.Context(), user, sc.company, sc.caller)
	})
}

func (h *CompanyHandler) AcceptInvitation(w http.ResponseWriter, r *http.Request) {
	h.selfAction(w, r, "Invitation accepted", func(sc *scope, user uuid.UUID) error {
		_, err := h.workflow.AcceptInvitation(r.Context(), user, sc.company, sc.caller)
		return err
	})
}

func (h *CompanyHandler) RefuseInvitation(w http.ResponseWriter, r *http.Request) {
	h.selfAction(w, r, "Invitation refused", func(sc *scope, user uuid.UUID) error {
		return h.workflow.RefuseInvitation(r.Context(), user, sc.company, sc.caller)
	})
}

func (h *CompanyHandler) SendRequest(w http.ResponseWriter, r *http.Request) {
	h.selfAction(w, r, "Request sent", func(sc *scope, user uuid.UUID) error {
		_, err := h.workflow.SendRequest(r.Context(), user, sc.company, sc.caller)
		return err
	})
}

func (h *CompanyHandler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	h.selfAction(w, r, "Request canceled", func(sc *scope, user uuid.UUID) error {
		return h.workflow.CancelRequest(r.Context(), user, sc.company, sc.caller)
	})
}

func (h *CompanyHandler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	h.userAction(w, r, "Request accepted", func(sc *scope, user uuid.UUID) error {
		_, err := h.workflow.AcceptRequest(r.Context(), user, sc.company, sc.caller)
		return err
	})
}

func (h *CompanyHandler) RefuseRequest(w http.ResponseWriter, r *http.Request) {
	h.userAction(w, r, "Request refused", func(sc *scope, user uuid.UUID) error {
		return h.workflow.RefuseRequest(r.Context(), user, sc.company, sc.caller)
	})
}

func (h *CompanyHandler) CompanyInvitations(w http.ResponseWriter, r *http.Request) {
	sc, err := h.fromPath(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	page := pageFrom(r)
	actions, err := h.workflow.ListCompanyInvitations(r.Context(), sc.company, sc.caller, page)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse(actions, page))
}

func (h *CompanyHandler) CompanyRequests(w http.ResponseWriter, r *http.Request) {
	sc, err := h.fromPath(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	page := pageFrom(r)
	actions, err := h.workflow.ListCompanyRequests(r.Context(), sc.company, sc.caller, page)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse(actions, page))
}

func (h *CompanyHandler) UserInvitations(w http.ResponseWriter, r *http.Request) {
	callerID, err := caller(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	userID, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	page := pageFrom(r)
	actions, err := h.workflow.ListUserInvitations(r.Context(), userID, callerID, page)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse(actions, page))
}

func (h *CompanyHandler) UserRequests(w http.ResponseWriter, r *http.Request) {
	callerID, err := caller(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	userID, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, r, err)
		return
	}
	page := pageFrom(r)
	actions, err := h.workflow.ListUserRequests(r.Context(), userID, callerID, page)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse(actions, page))
}
