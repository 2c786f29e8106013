package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"blogdomain/internal/blogservice"
	"blogdomain/internal/common"
	"blogdomain/internal/userservice"
)

// The demo walks the whole domain: users with roles, categories, articles and
// video posts, comments, likes, serialization and the permission rules.
func main() {
	cfg, err := loadConfig(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)

	permissions := userservice.NewPermissionService()
	blog := blogservice.NewBlogService(permissions, common.NewIDGenerator("id_"))

	userID := common.NewIDGenerator("u_")
	postID := common.NewIDGenerator("p_")

	// Step 1: one user per role.
	admin := userservice.NewUser(userID(), "Alice Admin", "senha123", userservice.RoleAdmin)
	editor := userservice.NewUser(userID(), "Eduardo Editor", "senha123", userservice.RoleEditor)
	reader := userservice.NewUser(userID(), "Lucas Leitor", "senha123", userservice.RoleReader)

	logger.Info("users created",
		slog.Any("admin", admin.View()),
		slog.Any("editor", editor.View()),
		slog.Any("reader", reader.View()))

	// Step 2: categories.
	catTech, err := blog.CreateCategory("Tecnologia")
	if err != nil {
		logger.Error("failed to create category", slog.String("error", err.Error()))
		os.Exit(1)
	}
	catLife, err := blog.CreateCategory("Estilo de Vida")
	if err != nil {
		logger.Error("failed to create category", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("categories created",
		slog.Any("tech", catTech.View()),
		slog.Any("life", catLife.View()))

	// Step 3: a mix of articles and video posts.
	article1 := blog.CreatePublication(blogservice.NewArticle(
		postID(),
		"Como Go ajuda no design",
		strings.Repeat("Go favorece interfaces pequenas e composição em vez de herança. ", 5),
		editor,
		"Breve sobre Go",
	))
	article2 := blog.CreatePublication(blogservice.NewArticle(
		postID(),
		"Pequenos hábitos para produtividade",
		"Comece o dia com foco e objetivos claros.",
		reader,
		"",
	))
	video1 := blog.CreatePublication(blogservice.NewVideoPost(
		postID(),
		"Entrevista com especialista",
		"Uma entrevista profunda sobre arquitetura de software.",
		admin,
		"https://youtu.be/exemplo",
		3600,
	))
	video2 := blog.CreatePublication(blogservice.NewVideoPost(
		postID(),
		"Vlog: rotina diária",
		"Mostrando dia a dia e organização.",
		editor,
		"https://youtu.be/vlog",
		600,
	))

	logger.Info("publications created", slog.Int("total", len(blog.Publications())))

	// Step 4: category associations, kept consistent on both sides by the
	// service.
	for _, assign := range []struct {
		categoryID    string
		publicationID string
	}{
		{catTech.ID, article1.ID},
		{catLife.ID, article2.ID},
		{catTech.ID, video1.ID},
		{catLife.ID, video2.ID},
	} {
		if err := blog.AssignCategory(assign.categoryID, assign.publicationID); err != nil {
			logger.Error("failed to assign category", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("categories assigned",
		slog.Any("tech_posts", catTech.PostIDs()),
		slog.Any("life_posts", catLife.PostIDs()))

	// Step 5: comments.
	if _, err := blog.CommentPublication(article1.ID, "Ótimo texto, ajudou muito!", reader); err != nil {
		logger.Error("failed to comment", slog.String("error", err.Error()))
	}
	if _, err := blog.CommentPublication(article1.ID, "Concordo com os pontos apresentados.", admin); err != nil {
		logger.Error("failed to comment", slog.String("error", err.Error()))
	}
	if _, err := blog.CommentPublication(video1.ID, "Gostei da entrevista!", editor); err != nil {
		logger.Error("failed to comment", slog.String("error", err.Error()))
	}

	// Step 6: likes. Liking twice does not double count.
	blog.LikePublication(article1.ID, reader)
	blog.LikePublication(article1.ID, admin)
	blog.LikePublication(article1.ID, admin)
	blog.LikePublication(video1.ID, editor)
	blog.LikePublication(video1.ID, reader)

	logger.Info("likes added",
		slog.Int("article1_total", article1.TotalLikes()),
		slog.Int("video1_total", video1.TotalLikes()))

	// Step 7: serialized views. The password never shows up.
	logger.Info("serialized user", slog.Any("admin", admin.View()))
	for _, p := range blog.Publications() {
		logger.Info("serialized publication", slog.Any("publication", p.View()))
	}

	// Step 8: console rendering.
	for _, p := range blog.Publications() {
		fmt.Println(p.Display())
	}

	// Step 9: the permission rules at work. The reader may not delete the
	// editor's article; the editor may edit anyone's publication; the admin
	// may delete anything.
	outcome := blog.DeletePublication(article1.ID, reader)
	logger.Info("reader tried to delete the editor's article",
		slog.Bool("ok", outcome.OK),
		slog.String("message", outcome.Message))

	if _, err := blog.EditPublication(video1.ID, editor, blogservice.UpdatePublicationRequest{
		Title: "Entrevista com especialista (editada)",
	}); err != nil {
		logger.Error("editor failed to edit the admin's video", slog.String("error", err.Error()))
	} else {
		logger.Info("editor edited the admin's video", slog.String("title", video1.Title))
	}

	outcome = blog.DeletePublication(article1.ID, admin)
	logger.Info("admin deleted the editor's article",
		slog.Bool("ok", outcome.OK),
		slog.String("message", outcome.Message))

	// Step 10: role assignment, gated by the permission service. Author
	// changes follow the same pattern: the entity mutator trusts the caller,
	// so the check happens here.
	if permissions.CanAssignRole(admin) {
		reader.AssignRole(userservice.RoleEditor)
		logger.Info("admin promoted the reader", slog.Any("user", reader.View()))
	}

	if permissions.CanEdit(admin, article2) {
		article2.ChangeAuthor(editor)
		logger.Info("article reassigned", slog.String("author", article2.Author.Name))
	}

	logger.Info("remaining publications", slog.Int("total", len(blog.Publications())),
		slog.String("environment", cfg.Environment))
}

func newLogger(cfg *Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
