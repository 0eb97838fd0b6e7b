package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"blogbox/app/models"
	"blogbox/app/repositories"
	"blogbox/app/services"

	"github.com/gorilla/mux"
)

// UserController handles HTTP requests for signup, login, and user lookups
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// Signup handles creating a new user account
func (uc *UserController) Signup(w http.ResponseWriter, r *http.Request) {
	var input services.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, err := uc.userService.CreateUser(input)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		var derr *models.DuplicateKeyError
		if errors.As(err, &derr) {
			sendError(w, err.Error(), http.StatusConflict)
			return
		}
		sendError(w, "Failed to create user: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sendJSON(w, http.StatusCreated, user.Public())
}

// Login handles verifying credentials and issuing a session token
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var input services.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	token, err := uc.userService.LoginUser(input)
	if err != nil {
		var aerr *models.AuthenticationError
		if errors.As(err, &aerr) {
			sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		sendError(w, "Failed to log in: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sendJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Show handles fetching the public info of a user
func (uc *UserController) Show(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	info, err := uc.userService.GetUserInfoByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		sendError(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		sendError(w, "Failed to fetch user: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sendJSON(w, http.StatusOK, info)
}
