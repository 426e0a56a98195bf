package handlers

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/socially-app/backend/internal/identity"
	"github.com/socially-app/backend/internal/models"
)

// In-memory fakes for the repository and collaborator interfaces, shared by
// the handler tests.

type fakeUserRepo struct {
	users     map[uint]*models.User
	nextID    uint
	follows   *fakeFollowRepo
	createErr error
	lookupErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (f *fakeUserRepo) CreateUser(user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, u := range f.users {
		if u.FirebaseUID == user.FirebaseUID {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetUserByID(id uint) (*models.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	if u, ok := f.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUserByFirebaseUID(firebaseUID string) (*models.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, u := range f.users {
		if u.FirebaseUID == firebaseUID {
			clone := *u
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetSuggestedUsers(excludeUserID uint, limit int) ([]models.User, error) {
	var out []models.User
	for _, u := range f.sorted() {
		if u.ID == excludeUserID {
			continue
		}
		if f.follows != nil && f.follows.has(excludeUserID, u.ID) {
			continue
		}
		out = append(out, *u)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeUserRepo) sorted() []*models.User {
	ids := make([]uint, 0, len(f.users))
	for id := range f.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		out = append(out, f.users[id])
	}
	return out
}

func (f *fakeUserRepo) mustAdd(name, username, firebaseUID string) *models.User {
	user := &models.User{
		Name:        name,
		Username:    username,
		Email:       username + "@example.com",
		FirebaseUID: firebaseUID,
	}
	if err := f.CreateUser(user); err != nil {
		panic(fmt.Sprintf("seeding user %s: %v", username, err))
	}
	return user
}

type followKey struct {
	followerID, followingID uint
}

type fakeFollowRepo struct {
	edges         map[followKey]struct{}
	notifications []models.Notification
	users         *fakeUserRepo
	followErr     error
	unfollowErr   error
	stateOverride *bool // forces the IsFollowing answer, for race tests
}

func newFakeFollowRepo(users *fakeUserRepo) *fakeFollowRepo {
	f := &fakeFollowRepo{edges: make(map[followKey]struct{}), users: users}
	if users != nil {
		users.follows = f
	}
	return f
}

func (f *fakeFollowRepo) has(followerID, followingID uint) bool {
	_, ok := f.edges[followKey{followerID, followingID}]
	return ok
}

func (f *fakeFollowRepo) IsFollowing(followerID, followingID uint) (bool, error) {
	if f.stateOverride != nil {
		return *f.stateOverride, nil
	}
	return f.has(followerID, followingID), nil
}

func (f *fakeFollowRepo) FollowAndNotify(follow *models.Follow, notification *models.Notification) error {
	if f.followErr != nil {
		return f.followErr
	}
	key := followKey{follow.FollowerID, follow.FollowingID}
	if _, ok := f.edges[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.edges[key] = struct{}{}
	f.notifications = append(f.notifications, *notification)
	return nil
}

func (f *fakeFollowRepo) Unfollow(followerID, followingID uint) error {
	if f.unfollowErr != nil {
		return f.unfollowErr
	}
	delete(f.edges, followKey{followerID, followingID})
	return nil
}

func (f *fakeFollowRepo) GetFollowers(userID uint) ([]models.User, error) {
	var out []models.User
	for key := range f.edges {
		if key.followingID == userID {
			if u, ok := f.users.users[key.followerID]; ok {
				out = append(out, *u)
			}
		}
	}
	return out, nil
}

func (f *fakeFollowRepo) GetFollowing(userID uint) ([]models.User, error) {
	var out []models.User
	for key := range f.edges {
		if key.followerID == userID {
			if u, ok := f.users.users[key.followingID]; ok {
				out = append(out, *u)
			}
		}
	}
	return out, nil
}

func (f *fakeFollowRepo) GetFollowersCount(userID uint) (int64, error) {
	var count int64
	for key := range f.edges {
		if key.followingID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeFollowRepo) GetFollowingCount(userID uint) (int64, error) {
	var count int64
	for key := range f.edges {
		if key.followerID == userID {
			count++
		}
	}
	return count, nil
}

type fakePostRepo struct {
	posts  []models.Post
	nextID uint
}

func (f *fakePostRepo) CreatePost(post *models.Post) error {
	f.nextID++
	post.ID = f.nextID
	f.posts = append(f.posts, *post)
	return nil
}

func (f *fakePostRepo) GetRecent(limit int) ([]models.Post, error) {
	if len(f.posts) > limit {
		return f.posts[len(f.posts)-limit:], nil
	}
	return f.posts, nil
}

func (f *fakePostRepo) GetByAuthorID(authorID uint) ([]models.Post, error) {
	var out []models.Post
	for _, p := range f.posts {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePostRepo) CountByAuthorID(authorID uint) (int64, error) {
	var count int64
	for _, p := range f.posts {
		if p.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

type fakeNotificationRepo struct {
	notifications []models.Notification
}

func (f *fakeNotificationRepo) GetByRecipientID(recipientID uint, page, limit int) ([]models.Notification, int64, error) {
	var out []models.Notification
	for _, n := range f.notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	total := int64(len(out))
	start := (page - 1) * limit
	if start >= len(out) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (f *fakeNotificationRepo) GetUnreadCount(recipientID uint) (int64, error) {
	var count int64
	for _, n := range f.notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkAsRead(notificationID uint) error {
	for i := range f.notifications {
		if f.notifications[i].ID == notificationID {
			f.notifications[i].IsRead = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) MarkAllAsRead(recipientID uint) error {
	for i := range f.notifications {
		if f.notifications[i].RecipientID == recipientID {
			f.notifications[i].IsRead = true
		}
	}
	return nil
}

type fakeProfiles struct {
	profiles map[string]*identity.Profile
	err      error
}

func (f *fakeProfiles) Fetch(_ context.Context, uid string) (*identity.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.profiles[uid]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("no profile for %s", uid)
}

type fakeUploadRepo struct {
	uploads []models.Upload
	err     error
}

func (f *fakeUploadRepo) RecordUpload(_ context.Context, upload *models.Upload) error {
	if f.err != nil {
		return f.err
	}
	f.uploads = append(f.uploads, *upload)
	return nil
}

func (f *fakeUploadRepo) GetByUploaderUID(_ context.Context, uploaderUID string, limit int64) ([]models.Upload, error) {
	var out []models.Upload
	for _, u := range f.uploads {
		if u.UploaderUID == uploaderUID {
			out = append(out, u)
		}
	}
	return out, nil
}

type recordingRevalidator struct {
	paths []string
	err   error
}

func (r *recordingRevalidator) Revalidate(_ context.Context, path string) error {
	if r.err != nil {
		return r.err
	}
	r.paths = append(r.paths, path)
	return nil
}
