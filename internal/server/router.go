package server

import (
	"net/http"

	"github.com/avdeyev/ranobe-hub/internal/api"
	"github.com/avdeyev/ranobe-hub/internal/auth"
	"github.com/avdeyev/ranobe-hub/internal/comment"
	"github.com/avdeyev/ranobe-hub/internal/ranobe"
	"github.com/avdeyev/ranobe-hub/internal/web"
	"github.com/avdeyev/ranobe-hub/pkg/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every page and API route. templatesGlob and staticDir are
// passed explicitly so tests can point them at the right relative paths;
// an empty staticDir skips static file serving.
func NewRouter(cfg *config.Config, templatesGlob, staticDir string) *gin.Engine {
	router := gin.Default()
	router.LoadHTMLGlob(templatesGlob)
	if staticDir != "" {
		router.Static("/static", staticDir)
	}

	router.Use(auth.SessionMiddleware(cfg.Session.Secret))

	authHandler := auth.NewHandler(cfg.Session.Secret, cfg.Uploads.AvatarDir)
	ranobeHandler := ranobe.NewHandler()
	commentHandler := comment.NewHandler(ranobeHandler.ViewChapter)
	apiHandler := api.NewHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/", ranobeHandler.Index)

	router.GET("/register", authHandler.RegisterPage)
	router.POST("/register", authHandler.Register)
	router.GET("/login", authHandler.LoginPage)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", auth.RequireLogin(), authHandler.Logout)

	router.GET("/ranobe/:id", ranobeHandler.View)
	router.GET("/volume/:id", ranobeHandler.ViewVolume)
	router.GET("/chapter/:id", ranobeHandler.ViewChapter)
	// Anonymous submissions are not rejected, the chapter page just renders
	// without the comment.
	router.POST("/chapter/:id", commentHandler.Post)

	authenticated := router.Group("")
	authenticated.Use(auth.RequireLogin())
	{
		authenticated.GET("/add_ranobe", ranobeHandler.AddPage)
		authenticated.POST("/add_ranobe", ranobeHandler.Add)
		authenticated.GET("/edit_ranobe/:id", ranobeHandler.EditPage)
		authenticated.POST("/edit_ranobe/:id", ranobeHandler.Edit)
		authenticated.GET("/delete_ranobe/:id", ranobeHandler.Delete)
		authenticated.POST("/ranobe/:id/new_volume", ranobeHandler.NewVolume)
		authenticated.GET("/ranobe/:id/add_chapter", ranobeHandler.AddChapterPage)
		authenticated.POST("/ranobe/:id/add_chapter", ranobeHandler.AddChapter)
		authenticated.GET("/edit_chapter/:id", ranobeHandler.EditChapterPage)
		authenticated.POST("/edit_chapter/:id", ranobeHandler.EditChapter)
		authenticated.GET("/delete_chapter/:id", ranobeHandler.DeleteChapter)
		authenticated.GET("/delete_comment/:id", commentHandler.Delete)
	}

	apiGroup := router.Group("/api")
	apiGroup.Use(cors.Default())
	{
		apiGroup.GET("/ranobe", apiHandler.ListRanobe)
		apiGroup.GET("/ranobe/:id/volumes/:n/chapters", apiHandler.ListVolumeChapters)
		apiGroup.GET("/ranobe/:id/volumes/:n/chapters/:cn", apiHandler.GetChapterByNumber)
		apiGroup.GET("/chapters/:id", apiHandler.GetChapter)
	}

	router.NoRoute(func(c *gin.Context) {
		web.NotFound(c)
	})

	return router
}
