package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/plumehq/plume/pkg/internal/http/pagecache"
)

func MapAPIs(app *fiber.App) {
	app.Get("/", pagecache.New(), homeFeed)
	app.Get("/follow", listFollowedPost)
	app.Get("/groups", listGroup)
	app.Get("/group/:slug", listGroupPost)
	app.Get("/profile/:name", listProfilePost)
	app.Post("/profile/:name/follow", followProfile)
	app.Post("/profile/:name/unfollow", unfollowProfile)
	app.Get("/create", showCreatePost)
	app.Post("/create", createPost)
	app.Get("/posts/:postId", getPostDetail)
	app.Get("/posts/:postId/edit", showEditPost)
	app.Post("/posts/:postId/edit", editPost)
	app.Post("/posts/:postId/comment", addComment)
}
