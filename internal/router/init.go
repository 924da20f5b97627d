package router

import (
	"github.com/jericho-forum/jericho/internal/application"
	"github.com/jericho-forum/jericho/internal/container"
	"github.com/jericho-forum/jericho/internal/identity"
	"github.com/jericho-forum/jericho/internal/infrastructure/mongodb"
	handlers "github.com/jericho-forum/jericho/internal/interface/http"
	"github.com/jericho-forum/jericho/internal/router/modules"
)

func buildPostModule() *modules.PostModule {
	cfg := container.GetConfig()
	repo := mongodb.NewPostRepository(container.GetMongo(), cfg.PostsCollection)
	svc := application.NewPostService(repo, container.GetLogger(), container.GetES(), cfg.ESPostsIndex)
	return modules.NewPostModule(handlers.NewPostHandler(svc, container.GetLogger()))
}

func buildCommentModule() *modules.CommentModule {
	cfg := container.GetConfig()
	repo := mongodb.NewCommentRepository(container.GetMongo(), cfg.CommentsCollection)
	svc := application.NewCommentService(repo)
	return modules.NewCommentModule(handlers.NewCommentHandler(svc, container.GetLogger()))
}

func buildFavoriteModule() *modules.FavoriteModule {
	cfg := container.GetConfig()
	repo := mongodb.NewFavoriteRepository(container.GetMongo(), cfg.FavoritesCollection)
	svc := application.NewFavoriteService(repo)
	return modules.NewFavoriteModule(handlers.NewFavoriteHandler(svc, container.GetLogger()))
}

func buildUserModule() *modules.UserModule {
	cfg := container.GetConfig()
	store := mongodb.NewUserStore(container.GetMongo(), cfg.UsersCollection)
	tokens := identity.NewTokenProvider(container.GetRedis(), cfg.ConfirmTokenTTL)
	manager := identity.NewManager(store, tokens, container.GetLogger())

	var pub application.Publisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}
	svc := application.NewUserService(manager, container.GetJWT(), pub, container.GetLogger(), cfg.ConfirmEmailURL, cfg.MailSendEnabled)
	return modules.NewUserModule(handlers.NewUserHandler(svc, container.GetLogger()))
}

func buildMediaModule() *modules.MediaModule {
	cfg := container.GetConfig()
	return modules.NewMediaModule(handlers.NewMediaHandler(container.GetGCS(), cfg.GCSBucket, container.GetLogger()))
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	r.Add(buildPostModule())
	r.Add(buildCommentModule())
	r.Add(buildFavoriteModule())
	r.Add(buildUserModule())
	r.Add(buildMediaModule())
}
