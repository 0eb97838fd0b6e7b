package routes

import (
	"net/http"

	"blogbox/app/controllers"
	"blogbox/app/middleware"
	"blogbox/app/repositories"
	"blogbox/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes wires repositories, services, and controllers over the provided
// Badger DB and returns the application's router. All dependencies are built
// here and passed down explicitly.
func SetupRoutes(db *badger.DB, jwtSecret []byte) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)
	userService := services.NewUserService(userRepo, jwtSecret)
	postService := services.NewPostService(postRepo)

	userController := controllers.NewUserController(userService)
	postController := controllers.NewPostController(postService)

	auth := middleware.Authenticate(userService)

	api := router.PathPrefix("/api").Subrouter()

	// User API endpoints
	api.HandleFunc("/user/signup", userController.Signup).Methods("POST")
	api.HandleFunc("/user/login", userController.Login).Methods("POST")
	api.HandleFunc("/users/{id}", userController.Show).Methods("GET")

	// Posts API endpoints; mutations require a session token
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("/{id}", postController.Show).Methods("GET")
	posts.Handle("", auth(http.HandlerFunc(postController.Create))).Methods("POST")
	posts.Handle("/{id}", auth(http.HandlerFunc(postController.Edit))).Methods("PATCH", "PUT")
	posts.Handle("/{id}", auth(http.HandlerFunc(postController.Delete))).Methods("DELETE")

	return router
}
