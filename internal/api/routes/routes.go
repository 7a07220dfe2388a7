package routes

import (
	"fmt"
	"net/http"

	"pandoro-backend/internal/api/handlers"
	"pandoro-backend/internal/api/middleware"
	"pandoro-backend/internal/auth"
	"pandoro-backend/internal/config"
	"pandoro-backend/internal/platform"
	"pandoro-backend/internal/repository"
	"pandoro-backend/internal/service"
	"pandoro-backend/internal/storage"
	"pandoro-backend/internal/validation"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validation.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	updateRepo := repository.NewUpdateRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	changelogRepo := repository.NewChangelogRepository(db)

	// Initialize auth configuration and services
	authConfig, err := auth.LoadAuthConfig("")
	if err != nil {
		return nil, fmt.Errorf("failed to load auth config: %w", err)
	}
	authService, err := auth.NewAuthService(authConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// External collaborators
	fetcher, err := platform.NewGitHubFetcher(cfg.GitHubToken, cfg.GitHubBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GitHub client: %w", err)
	}
	files := storage.NewLocalStorage(cfg.UploadsDir, cfg.UploadsURLPrefix)

	// Initialize services
	userService := service.NewUserService(userRepo, authService, files, cfg.MaxUploadSize(), validator)
	projectService := service.NewProjectService(projectRepo, groupRepo, changelogRepo, fetcher)
	updateService := service.NewUpdateService(projectRepo, updateRepo, noteRepo, changelogRepo, validator)
	noteService := service.NewNoteService(noteRepo, validator)
	groupService := service.NewGroupService(groupRepo, memberRepo, userRepo, projectRepo, changelogRepo, files, cfg.MaxUploadSize(), validator)
	changelogService := service.NewChangelogService(changelogRepo, memberRepo)
	overviewService := service.NewOverviewService(projectRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	updateHandler := handlers.NewUpdateHandler(updateService)
	noteHandler := handlers.NewNoteHandler(noteService)
	groupHandler := handlers.NewGroupHandler(groupService)
	changelogHandler := handlers.NewChangelogHandler(changelogService)
	overviewHandler := handlers.NewOverviewHandler(overviewService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded profile pictures and group logos
	router.Static(files.URLPrefix(), files.BaseDir())

	v1 := router.Group("/api/v1")

	// Account creation and authentication are the only public API routes
	v1.POST("/users/signUp", userHandler.SignUp)
	v1.POST("/users/signIn", userHandler.SignIn)

	api := v1.Group("")
	api.Use(authMiddleware.RequireAuth())
	{
		// User routes
		users := api.Group("/users")
		{
			users.PATCH("/:id/changeEmail", userHandler.ChangeEmail)
			users.PATCH("/:id/changePassword", userHandler.ChangePassword)
			users.POST("/:id/changeProfilePic", userHandler.ChangeProfilePic)
			users.DELETE("/:id/deleteAccount", userHandler.DeleteAccount)
			users.GET("/:id/candidates", userHandler.GetCandidates)
			users.GET("/:id/candidatesCount", userHandler.CountCandidates)
		}

		// Project routes
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.GetProjects)
			projects.GET("/in_development", projectHandler.GetInDevelopmentProjects)
			projects.POST("/addProject", projectHandler.AddProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PATCH("/:id/editProject", projectHandler.EditProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)
			projects.GET("/:id/repository", projectHandler.GetRepository)

			// Update and change note routes
			updates := projects.Group("/:id/updates")
			{
				updates.POST("/schedule", updateHandler.ScheduleUpdate)
				updates.PATCH("/:updateId/start", updateHandler.StartUpdate)
				updates.PATCH("/:updateId/publish", updateHandler.PublishUpdate)
				updates.DELETE("/:updateId/delete", updateHandler.DeleteUpdate)
				updates.PUT("/:updateId/addChangeNote", updateHandler.AddChangeNote)

				notes := updates.Group("/:updateId/notes/:noteId")
				{
					notes.PATCH("/markChangeNoteAsDone", updateHandler.MarkChangeNoteAsDone)
					notes.PATCH("/markChangeNoteAsToDo", updateHandler.MarkChangeNoteAsToDo)
					notes.PATCH("/editChangeNote", updateHandler.EditChangeNote)
					notes.PATCH("/moveChangeNote", updateHandler.MoveChangeNote)
					notes.DELETE("/deleteChangeNote", updateHandler.DeleteChangeNote)
				}
			}
		}

		// Group routes
		groups := api.Group("/groups")
		{
			groups.GET("", groupHandler.GetGroups)
			groups.POST("/createGroup", groupHandler.CreateGroup)
			groups.GET("/:id", groupHandler.GetGroup)
			groups.PATCH("/:id/editGroup", groupHandler.EditGroup)
			groups.POST("/:id/changeLogo", groupHandler.ChangeLogo)
			groups.PUT("/:id/addMembers", groupHandler.AddMembers)
			groups.PATCH("/:id/acceptGroupInvitation", groupHandler.AcceptInvitation)
			groups.DELETE("/:id/declineGroupInvitation", groupHandler.DeclineInvitation)
			groups.PATCH("/:id/changeMemberRole", groupHandler.ChangeMemberRole)
			groups.DELETE("/:id/removeMember", groupHandler.RemoveMember)
			groups.PATCH("/:id/editProjects", groupHandler.EditProjects)
			groups.DELETE("/:id/leaveGroup", groupHandler.LeaveGroup)
			groups.DELETE("/:id/deleteGroup", groupHandler.DeleteGroup)
		}

		// Personal note routes
		notes := api.Group("/notes")
		{
			notes.GET("", noteHandler.GetNotes)
			notes.POST("/create", noteHandler.CreateNote)
			notes.PATCH("/:id/markAsDone", noteHandler.MarkAsDone)
			notes.PATCH("/:id/markAsToDo", noteHandler.MarkAsToDo)
			notes.DELETE("/:id/deleteNote", noteHandler.DeleteNote)
		}

		// Changelog routes
		changelogs := api.Group("/changelogs")
		{
			changelogs.GET("", changelogHandler.GetChangelogs)
			changelogs.GET("/unread", changelogHandler.CountUnread)
			changelogs.PATCH("/:id/readChangelog", changelogHandler.ReadChangelog)
			changelogs.DELETE("/:id/deleteChangelog", changelogHandler.DeleteChangelog)
		}

		api.GET("/overview", overviewHandler.GetOverview)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.Envelope{
			Success:    false,
			StatusCode: http.StatusNotFound,
			Error:      "Endpoint not found: " + c.Request.Method + " " + c.Request.URL.Path,
		})
	})

	return router, nil
}
