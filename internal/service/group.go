package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"pandoro-backend/internal/database/models"
	apperrors "pandoro-backend/internal/errors"
	"pandoro-backend/internal/lifecycle"
	"pandoro-backend/internal/logger"
	"pandoro-backend/internal/repository"
	"pandoro-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupService handles groups, their memberships and the projects they share
type GroupService struct {
	repo          repository.GroupRepositoryInterface
	memberRepo    repository.MemberRepositoryInterface
	userRepo      repository.UserRepositoryInterface
	projectRepo   repository.ProjectRepositoryInterface
	changelogRepo repository.ChangelogRepositoryInterface
	notifier      changelogNotifier
	uploader      imageUploader
	validator     *validator.Validate
}

// NewGroupService creates a new group service
func NewGroupService(
	repo repository.GroupRepositoryInterface,
	memberRepo repository.MemberRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	changelogRepo repository.ChangelogRepositoryInterface,
	files storage.Storage,
	maxUploadSize int64,
	validator *validator.Validate,
) *GroupService {
	return &GroupService{
		repo:          repo,
		memberRepo:    memberRepo,
		userRepo:      userRepo,
		projectRepo:   projectRepo,
		changelogRepo: changelogRepo,
		notifier:      changelogNotifier{repo: changelogRepo},
		uploader:      imageUploader{storage: files, maxSize: maxUploadSize},
		validator:     validator,
	}
}

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	Name        string   `json:"name" validate:"group_name" example:"Tecknobit"`
	Description string   `json:"description" validate:"group_description" example:"Open source projects"`
	Members     []string `json:"members" validate:"members" example:"jane.doe@pandoro.dev"`
}

// EditGroupRequest represents the request to edit a group
type EditGroupRequest struct {
	Description string `json:"description" validate:"group_description" example:"Open source projects"`
}

// MembersRequest carries the emails of the users to invite
type MembersRequest struct {
	Members []string `json:"members" validate:"members" example:"jane.doe@pandoro.dev"`
}

// InvitationRequest references the INVITED_GROUP changelog of the invitation
type InvitationRequest struct {
	ChangelogID uuid.UUID `json:"changelogId" validate:"required"`
}

// ChangeRoleRequest represents the request to change the role of a member
type ChangeRoleRequest struct {
	MemberID uuid.UUID   `json:"memberId" validate:"required"`
	Role     models.Role `json:"role" example:"MAINTAINER"`
}

// RemoveMemberRequest represents the request to remove a member
type RemoveMemberRequest struct {
	MemberID uuid.UUID `json:"memberId" validate:"required"`
}

// EditProjectsRequest carries the projects of the caller shared with the group
type EditProjectsRequest struct {
	Projects []uuid.UUID `json:"projects"`
}

// LeaveGroupRequest names the member who becomes ADMIN when the only ADMIN leaves
type LeaveGroupRequest struct {
	NextAdminID *uuid.UUID `json:"nextAdminId,omitempty"`
}

// GetGroups returns a page of the groups the user has joined, or authored when authoredOnly is set
func (s *GroupService) GetGroups(userID uuid.UUID, authoredOnly bool, page PageRequest) (*Page[models.Group], error) {
	groups, total, err := s.repo.List(userID, authoredOnly, page.PageSize, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}
	return NewPage(groups, page, total), nil
}

// GetGroup returns a group the user belongs to, invitation pending or not
func (s *GroupService) GetGroup(userID, groupID uuid.UUID) (*models.Group, error) {
	group, err := s.load(groupID)
	if err != nil {
		return nil, err
	}
	if group.Member(userID) == nil {
		return nil, apperrors.ErrGroupNotFound
	}
	return group, nil
}

func (s *GroupService) load(groupID uuid.UUID) (*models.Group, error) {
	group, err := s.repo.GetByID(groupID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrGroupNotFound, "group")
	}
	return group, nil
}

// administered returns the group when the user is one of its ADMINs
func (s *GroupService) administered(userID, groupID uuid.UUID) (*models.Group, error) {
	group, err := s.load(groupID)
	if err != nil {
		return nil, err
	}
	if !group.IsAdmin(userID) {
		return nil, apperrors.ErrNotGroupAdmin
	}
	return group, nil
}

// managed returns the group when the user is one of its ADMINs or MAINTAINERs
func (s *GroupService) managed(userID, groupID uuid.UUID) (*models.Group, error) {
	group, err := s.load(groupID)
	if err != nil {
		return nil, err
	}
	if !group.IsMaintainer(userID) {
		return nil, apperrors.ErrNotGroupManager
	}
	return group, nil
}

// CreateGroup creates a group administered by the user and invites the registered members
func (s *GroupService) CreateGroup(userID uuid.UUID, req *CreateGroupRequest) (*models.Group, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	existing, err := s.repo.GetByAuthorAndName(userID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing group by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrGroupExists
	}

	group := &models.Group{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		AuthorID:    userID,
		Name:        req.Name,
		Description: req.Description,
		Members: []models.GroupMember{{
			UserID:           userID,
			Role:             models.RoleAdmin,
			InvitationStatus: models.InvitationStatusJoined,
		}},
	}
	invited, err := s.invitees(group, req.Members)
	if err != nil {
		return nil, err
	}
	group.Members = append(group.Members, invited...)

	if err := s.repo.Create(group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	if err := s.invite(group, invited); err != nil {
		return nil, err
	}
	return group, nil
}

// invitees builds the pending memberships of the registered emails not yet in the group.
// Unknown emails are skipped.
func (s *GroupService) invitees(group *models.Group, emails []string) ([]models.GroupMember, error) {
	users, err := s.userRepo.GetByEmails(emails)
	if err != nil {
		return nil, fmt.Errorf("failed to get users by email: %w", err)
	}
	members := make([]models.GroupMember, 0, len(users))
	for _, user := range users {
		if group.Member(user.ID) != nil {
			continue
		}
		members = append(members, models.GroupMember{
			GroupID:          group.ID,
			UserID:           user.ID,
			Role:             models.RoleDeveloper,
			InvitationStatus: models.InvitationStatusPending,
		})
	}
	return members, nil
}

func (s *GroupService) invite(group *models.Group, members []models.GroupMember) error {
	owners := make([]uuid.UUID, 0, len(members))
	for _, member := range members {
		owners = append(owners, member.UserID)
	}
	return s.notifier.notify(owners, groupChangelog(models.ChangelogEventInvitedGroup, group.ID, group.Name))
}

// EditGroup changes the description of a group
func (s *GroupService) EditGroup(userID, groupID uuid.UUID, req *EditGroupRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}

	group, err := s.administered(userID, groupID)
	if err != nil {
		return err
	}
	group.Description = req.Description
	if err := s.repo.Update(group); err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	return nil
}

// ChangeLogo stores the uploaded logo and returns its URL
func (s *GroupService) ChangeLogo(ctx context.Context, userID, groupID uuid.UUID, file *multipart.FileHeader) (string, error) {
	group, err := s.administered(userID, groupID)
	if err != nil {
		return "", err
	}

	url, err := s.uploader.replace(ctx, "logos", group.ID, file, group.Logo, apperrors.ErrWrongGroupLogo)
	if err != nil {
		return "", err
	}
	group.Logo = url
	if err := s.repo.Update(group); err != nil {
		return "", fmt.Errorf("failed to update group: %w", err)
	}
	return url, nil
}

// AddMembers invites the registered emails not yet in the group
func (s *GroupService) AddMembers(userID, groupID uuid.UUID, req *MembersRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}

	group, err := s.managed(userID, groupID)
	if err != nil {
		return err
	}
	invited, err := s.invitees(group, req.Members)
	if err != nil {
		return err
	}
	if len(invited) == 0 {
		return nil
	}

	if err := s.memberRepo.CreateBatch(invited); err != nil {
		return fmt.Errorf("failed to add members: %w", err)
	}
	return s.invite(group, invited)
}

// invitation returns the pending membership of the user referenced by an invitation changelog
func (s *GroupService) invitation(userID, groupID, changelogID uuid.UUID) (*models.Group, *models.GroupMember, *models.Changelog, error) {
	changelog, err := s.changelogRepo.GetByID(changelogID)
	if err != nil {
		return nil, nil, nil, lookupError(err, apperrors.ErrChangelogNotFound, "changelog")
	}
	if changelog.OwnerID != userID || !lifecycle.IsInvitationFor(changelog, groupID) {
		return nil, nil, nil, apperrors.ErrNotInvitationChangelog
	}

	group, err := s.load(groupID)
	if err != nil {
		return nil, nil, nil, err
	}
	member := group.Member(userID)
	if member == nil {
		return nil, nil, nil, apperrors.ErrMemberNotFound
	}
	if member.IsJoined() {
		return nil, nil, nil, apperrors.ErrInvitationNotPending
	}
	return group, member, changelog, nil
}

// AcceptInvitation joins the group and notifies the other members
func (s *GroupService) AcceptInvitation(userID, groupID uuid.UUID, req *InvitationRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}

	group, member, changelog, err := s.invitation(userID, groupID, req.ChangelogID)
	if err != nil {
		return err
	}
	if err := s.memberRepo.Accept(member, changelog.ID); err != nil {
		return fmt.Errorf("failed to accept invitation: %w", err)
	}
	return s.notifier.notify(group.JoinedMemberIDs(userID), groupChangelog(models.ChangelogEventJoinedGroup, group.ID, ""))
}

// DeclineInvitation drops the pending membership together with its invitation
func (s *GroupService) DeclineInvitation(userID, groupID uuid.UUID, req *InvitationRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}

	_, member, changelog, err := s.invitation(userID, groupID, req.ChangelogID)
	if err != nil {
		return err
	}
	if err := s.memberRepo.Decline(member, changelog.ID); err != nil {
		return fmt.Errorf("failed to decline invitation: %w", err)
	}
	return nil
}

// target returns the member another ADMIN or MAINTAINER wants to act on. Nobody acts on
// themselves or on the group author, and MAINTAINERs cannot act on ADMINs.
func (s *GroupService) target(userID uuid.UUID, group *models.Group, memberID uuid.UUID) (*models.GroupMember, error) {
	if memberID == userID {
		return nil, apperrors.ErrActionOnSelf
	}
	if memberID == group.AuthorID {
		return nil, apperrors.ErrNotAuthorized
	}
	member := group.Member(memberID)
	if member == nil {
		return nil, apperrors.ErrMemberNotFound
	}
	if member.Role == models.RoleAdmin && !group.IsAdmin(userID) {
		return nil, apperrors.ErrNotGroupAdmin
	}
	return member, nil
}

// ChangeMemberRole changes the role of a joined member and notifies them
func (s *GroupService) ChangeMemberRole(userID, groupID uuid.UUID, req *ChangeRoleRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}
	if !req.Role.IsValid() {
		return apperrors.ErrWrongRole
	}

	group, err := s.managed(userID, groupID)
	if err != nil {
		return err
	}
	member, err := s.target(userID, group, req.MemberID)
	if err != nil {
		return err
	}
	if !member.IsJoined() {
		return apperrors.ErrMemberNotJoined
	}
	if req.Role == models.RoleAdmin && !group.IsAdmin(userID) {
		return apperrors.ErrNotGroupAdmin
	}

	member.Role = req.Role
	if err := s.memberRepo.Update(member); err != nil {
		return fmt.Errorf("failed to change member role: %w", err)
	}
	return s.notifier.notify([]uuid.UUID{member.UserID}, groupChangelog(models.ChangelogEventRoleChanged, group.ID, string(req.Role)))
}

// RemoveMember removes a member, joined or still invited, from the group
func (s *GroupService) RemoveMember(userID, groupID uuid.UUID, req *RemoveMemberRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return validationError(err)
	}

	group, err := s.managed(userID, groupID)
	if err != nil {
		return err
	}
	member, err := s.target(userID, group, req.MemberID)
	if err != nil {
		return err
	}
	if err := s.memberRepo.Delete(member.ID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

// EditProjects replaces the projects of the caller shared with the group. Projects shared
// by other members are kept.
func (s *GroupService) EditProjects(userID, groupID uuid.UUID, req *EditProjectsRequest) error {
	group, err := s.administered(userID, groupID)
	if err != nil {
		return err
	}

	ids := uniqueIDs(req.Projects)
	selected, err := s.projectRepo.GetByIDs(ids)
	if err != nil {
		return fmt.Errorf("failed to get projects: %w", err)
	}
	if len(selected) != len(ids) {
		return apperrors.ErrWrongProjectsList
	}
	for i := range selected {
		if selected[i].AuthorID != userID {
			return apperrors.ErrWrongProjectsList
		}
	}

	var current []models.Project
	next := append([]models.Project(nil), selected...)
	for _, project := range group.Projects {
		if project.AuthorID == userID {
			current = append(current, project)
		} else {
			next = append(next, project)
		}
	}
	added, removed := diffProjects(current, selected)

	if err := s.repo.ReplaceProjects(group, next); err != nil {
		return fmt.Errorf("failed to edit group projects: %w", err)
	}

	audience := group.JoinedMemberIDs(userID)
	for _, project := range removed {
		if err := s.notifier.notify(audience, projectChangelog(models.ChangelogEventProjectRemoved, project.ID, "")); err != nil {
			return err
		}
	}
	for _, project := range added {
		if err := s.notifier.notify(audience, projectChangelog(models.ChangelogEventProjectAdded, project.ID, "")); err != nil {
			return err
		}
	}
	return nil
}

// diffProjects returns the projects only in next (added) and only in current (removed)
func diffProjects(current, next []models.Project) (added, removed []models.Project) {
	currentIDs := make(map[uuid.UUID]bool, len(current))
	for _, project := range current {
		currentIDs[project.ID] = true
	}
	nextIDs := make(map[uuid.UUID]bool, len(next))
	for _, project := range next {
		nextIDs[project.ID] = true
		if !currentIDs[project.ID] {
			added = append(added, project)
		}
	}
	for _, project := range current {
		if !nextIDs[project.ID] {
			removed = append(removed, project)
		}
	}
	return added, removed
}

// LeaveGroup removes the user from the group. The last member deletes the group. When
// the only ADMIN leaves, the joined member named by NextAdminID becomes ADMIN.
func (s *GroupService) LeaveGroup(ctx context.Context, userID, groupID uuid.UUID, req *LeaveGroupRequest) error {
	group, err := s.load(groupID)
	if err != nil {
		return err
	}
	leaving := group.Member(userID)
	if leaving == nil || !leaving.IsJoined() {
		return apperrors.ErrMemberNotFound
	}

	if len(group.JoinedMemberIDs(userID)) == 0 {
		if err := s.repo.Delete(group.ID); err != nil {
			return fmt.Errorf("failed to delete group: %w", err)
		}
		s.uploader.discard(ctx, group.Logo)
		return nil
	}

	var successor *models.GroupMember
	if group.IsAdmin(userID) && len(group.Admins()) == 1 {
		if req.NextAdminID == nil || *req.NextAdminID == userID {
			return apperrors.ErrInvalidNextAdmin
		}
		successor = group.Member(*req.NextAdminID)
		if successor == nil || !successor.IsJoined() {
			return apperrors.ErrInvalidNextAdmin
		}
	} else if group.AuthorID == userID {
		successor = otherAdmin(group, userID)
	}

	if err := s.repo.HandOver(group, leaving, successor); err != nil {
		return fmt.Errorf("failed to leave group: %w", err)
	}
	if successor != nil {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"group_id":  group.ID,
			"successor": successor.UserID,
		}).Info("Group handed over")
	}
	return s.notifier.notify([]uuid.UUID{userID}, groupChangelog(models.ChangelogEventLeftGroup, group.ID, group.Name))
}

// DeleteGroup deletes a group and notifies its other members. Shared projects are kept.
func (s *GroupService) DeleteGroup(ctx context.Context, userID, groupID uuid.UUID) error {
	group, err := s.administered(userID, groupID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(group.ID); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	s.uploader.discard(ctx, group.Logo)

	deleted := models.Changelog{Event: models.ChangelogEventGroupDeleted, ExtraContent: group.Name}
	return s.notifier.notify(group.JoinedMemberIDs(userID), deleted)
}
