package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hienthq-zcv/admin-service/internal/dto"
	"github.com/hienthq-zcv/admin-service/internal/model"
	"github.com/hienthq-zcv/admin-service/internal/platform"
	"github.com/hienthq-zcv/admin-service/internal/repository"
	"go.uber.org/zap"
)

// pendingDelete is the PendingConfirmation state of the delete machine.
// The token ties a confirmation back to the request that opened it.
type pendingDelete struct {
	postID string
	token uuid.UUID
	admin string
}

type communityService struct {
	logger *zap.Logger
	api platform.API
	repo *repository.Repository
	notifier Notifier

	mu sync.Mutex
	items []model.Post
	filtered []model.Post
	query string
	isLoading bool
	pending *pendingDelete
}

func newCommunityService(logger *zap.Logger, api platform.API, repo *repository.Repository, notifier Notifier) Community {
	return &communityService{
		logger: logger,
		api: api,
		repo: repo,
		notifier: notifier,
	}
}

// Refresh reloads the post list from the platform. Any failure, including
// an unrecognized body shape, degrades to an empty list plus an error
// notification; it never propagates. Safe to call concurrently: the last
// completed call wins.
func (s *communityService) Refresh(ctx context.Context) {
	s.mu.Lock()
	s.isLoading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isLoading = false
		s.mu.Unlock()
	}()

	posts, err := s.api.ListCommunityPosts(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to load community posts: %s", err.Error())
		s.notifier.Error("Không thể tải bài viết")
		posts = nil
	}

	for i := range posts {
		posts[i].SortComments()
	}

	s.mu.Lock()
	s.items = posts
	s.applyFilterLocked()
	s.mu.Unlock()
}

// applyFilterLocked recomputes the derived filtered view. It must run
// after every mutation of items or query. A blank query selects the full
// backing slice, not a copy.
func (s *communityService) applyFilterLocked() {
	query := strings.ToLower(strings.TrimSpace(s.query))
	if query == "" {
		s.filtered = s.items
		return
	}

	filtered := make([]model.Post, 0, len(s.items))
	for _, post := range s.items {
		if strings.Contains(strings.ToLower(post.Location), query) ||
			strings.Contains(strings.ToLower(post.Content), query) ||
			strings.Contains(strings.ToLower(post.UserName), query) {
			filtered = append(filtered, post)
		}
	}

	s.filtered = filtered
}

func (s *communityService) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = q
	s.applyFilterLocked()
}

func (s *communityService) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Posts returns the filtered view. The copy keeps handler marshaling from
// aliasing view-model state.
func (s *communityService) Posts() []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]model.Post, len(s.filtered))
	copy(posts, s.filtered)
	return posts
}

// Summary aggregates the header counters over the full list, not the
// filtered view.
func (s *communityService) Summary() dto.CommunitySummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := dto.CommunitySummary{TotalPosts: len(s.items)}
	for _, post := range s.items {
		summary.TotalComments += len(post.Comments)
		summary.TotalLikes += post.Likes
	}

	return summary
}

func (s *communityService) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// RequestDelete transitions the delete machine to PendingConfirmation and
// returns the confirmation token. A second request replaces the pending
// target; no network effect happens here.
func (s *communityService) RequestDelete(postID string, admin string) uuid.UUID {
	token := uuid.New()

	s.mu.Lock()
	s.pending = &pendingDelete{postID: postID, token: token, admin: admin}
	s.mu.Unlock()

	return token
}

func (s *communityService) PendingDelete() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return "", false
	}
	return s.pending.postID, true
}

// ConfirmDelete executes the pending deletion. Whatever happens — upstream
// success, upstream failure, or a panic on the way — the machine returns
// to Idle. Only a server-acknowledged delete removes the post locally.
func (s *communityService) ConfirmDelete(ctx context.Context, token uuid.UUID) bool {
	s.mu.Lock()
	pending := s.pending
	s.mu.Unlock()

	if pending == nil || pending.token != token {
		return false
	}

	defer func() {
		s.mu.Lock()
		if s.pending == pending {
			s.pending = nil
		}
		s.mu.Unlock()
	}()

	if err := s.api.DeleteCommunityPost(ctx, pending.postID); err != nil {
		s.logger.Sugar().Errorf("failed to delete community post(%s): %s", pending.postID, err.Error())
		s.notifier.Error("Không thể xóa bài viết")
		return false
	}

	s.mu.Lock()
	items := make([]model.Post, 0, len(s.items))
	for _, post := range s.items {
		if post.ID != pending.postID {
			items = append(items, post)
		}
	}
	s.items = items
	s.applyFilterLocked()
	s.mu.Unlock()

	s.notifier.Success("Xóa bài viết thành công")
	s.recordAudit(ctx, pending)

	return true
}

// CancelDelete closes the confirmation without touching the server.
func (s *communityService) CancelDelete() {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
}

// recordAudit is best-effort; a failed audit write never undoes a
// confirmed deletion.
func (s *communityService) recordAudit(ctx context.Context, pending *pendingDelete) {
	if s.repo == nil {
		return
	}

	record := model.AuditRecord{
		ID: uuid.New(),
		PostID: pending.postID,
		Admin: pending.admin,
		DeletedAt: time.Now(),
	}
	if err := s.repo.Postgres.Audit.Create(ctx, record); err != nil {
		s.logger.Sugar().Errorf("failed to record deletion of post(%s): %s", pending.postID, err.Error())
	}
}
