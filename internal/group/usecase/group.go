package usecase

import (
	"context"
	"regexp"
	"strings"

	"ledgerly-api/internal/group"
	"ledgerly-api/internal/group/repository"
	"ledgerly-api/internal/model"
	userRepo "ledgerly-api/internal/user/repository"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return group.ErrEmptyEmail
	}
	if !emailRegex.MatchString(email) {
		return group.ErrInvalidEmailFormat
	}
	return nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip group.CreateInput) (group.GroupOutput, error) {
	if _, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Name: ip.Name}); err == nil {
		return group.GroupOutput{}, group.ErrNameUsed
	} else if err != repository.ErrNotFound {
		uc.l.Errorf(ctx, "internal.group.usecase.Create.GetOneByName: %v", err)
		return group.GroupOutput{}, err
	}

	if _, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{MemberEmail: sc.Email}); err == nil {
		return group.GroupOutput{}, group.ErrAlreadyInGroup
	} else if err != repository.ErrNotFound {
		uc.l.Errorf(ctx, "internal.group.usecase.Create.GetOneByMember: %v", err)
		return group.GroupOutput{}, err
	}

	var (
		members         []model.Member
		alreadyInGroup  []model.Member
		membersNotFound []model.Member
		callerListed    bool
	)

	for _, email := range ip.MemberEmails {
		if err := validateEmail(email); err != nil {
			return group.GroupOutput{}, err
		}

		if email == sc.Email {
			callerListed = true
		}

		usr, err := uc.userRepo.GetOne(ctx, sc, userRepo.GetOneOptions{Email: email})
		if err != nil {
			if err == userRepo.ErrNotFound {
				membersNotFound = append(membersNotFound, model.Member{Email: email})
				continue
			}
			uc.l.Errorf(ctx, "internal.group.usecase.Create.GetOneUser: %v", err)
			return group.GroupOutput{}, err
		}

		if _, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{MemberEmail: email}); err == nil {
			alreadyInGroup = append(alreadyInGroup, model.Member{Email: email})
			continue
		} else if err != repository.ErrNotFound {
			uc.l.Errorf(ctx, "internal.group.usecase.Create.GetOneByMember: %v", err)
			return group.GroupOutput{}, err
		}

		members = append(members, model.Member{Email: email, UserID: usr.ID})
	}

	if !callerListed {
		members = append(members, model.Member{Email: sc.Email, UserID: sc.UserID})
	}

	// The caller alone does not make a group.
	if len(members) < 2 {
		return group.GroupOutput{}, group.ErrNotEnoughMembers
	}

	grp, err := uc.repo.Create(ctx, sc, repository.CreateOptions{Name: ip.Name, Members: members})
	if err != nil {
		uc.l.Errorf(ctx, "internal.group.usecase.Create: %v", err)
		return group.GroupOutput{}, err
	}

	return group.GroupOutput{
		Group:           grp,
		AlreadyInGroup:  alreadyInGroup,
		MembersNotFound: membersNotFound,
	}, nil
}

func (uc *usecase) List(ctx context.Context, sc model.Scope) ([]model.Group, error) {
	grps, err := uc.repo.List(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "internal.group.usecase.List: %v", err)
		return nil, err
	}

	return grps, nil
}

func (uc *usecase) GetOne(ctx context.Context, sc model.Scope, name string) (model.Group, error) {
	grp, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Name: name})
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Group{}, group.ErrGroupNotFound
		}
		uc.l.Errorf(ctx, "internal.group.usecase.GetOne: %v", err)
		return model.Group{}, err
	}

	return grp, nil
}

func (uc *usecase) AddMembers(ctx context.Context, sc model.Scope, ip group.MembersInput) (group.GroupOutput, error) {
	grp, err := uc.GetOne(ctx, sc, ip.Name)
	if err != nil {
		return group.GroupOutput{}, err
	}

	var (
		newMembers      []model.Member
		alreadyInGroup  []model.Member
		membersNotFound []model.Member
	)

	for _, email := range ip.Emails {
		if err := validateEmail(email); err != nil {
			return group.GroupOutput{}, err
		}

		usr, err := uc.userRepo.GetOne(ctx, sc, userRepo.GetOneOptions{Email: email})
		if err != nil {
			if err == userRepo.ErrNotFound {
				membersNotFound = append(membersNotFound, model.Member{Email: email})
				continue
			}
			uc.l.Errorf(ctx, "internal.group.usecase.AddMembers.GetOneUser: %v", err)
			return group.GroupOutput{}, err
		}

		if _, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{MemberEmail: email}); err == nil {
			alreadyInGroup = append(alreadyInGroup, model.Member{Email: email})
			continue
		} else if err != repository.ErrNotFound {
			uc.l.Errorf(ctx, "internal.group.usecase.AddMembers.GetOneByMember: %v", err)
			return group.GroupOutput{}, err
		}

		newMembers = append(newMembers, model.Member{Email: email, UserID: usr.ID})
	}

	if len(newMembers) == 0 {
		return group.GroupOutput{}, group.ErrNotEnoughMembers
	}

	if err := uc.repo.AddMembers(ctx, sc, grp.ID, newMembers); err != nil {
		uc.l.Errorf(ctx, "internal.group.usecase.AddMembers: %v", err)
		return group.GroupOutput{}, err
	}

	updated, err := uc.GetOne(ctx, sc, ip.Name)
	if err != nil {
		return group.GroupOutput{}, err
	}

	return group.GroupOutput{
		Group:           updated,
		AlreadyInGroup:  alreadyInGroup,
		MembersNotFound: membersNotFound,
	}, nil
}

func (uc *usecase) RemoveMembers(ctx context.Context, sc model.Scope, ip group.MembersInput) (group.GroupOutput, error) {
	grp, err := uc.GetOne(ctx, sc, ip.Name)
	if err != nil {
		return group.GroupOutput{}, err
	}

	if len(grp.Members) == 1 {
		return group.GroupOutput{}, group.ErrLastMember
	}

	var (
		removeEmails    []string
		notInGroup      []model.Member
		membersNotFound []model.Member
	)

	for _, email := range ip.Emails {
		if err := validateEmail(email); err != nil {
			return group.GroupOutput{}, err
		}

		if _, err := uc.userRepo.GetOne(ctx, sc, userRepo.GetOneOptions{Email: email}); err != nil {
			if err == userRepo.ErrNotFound {
				membersNotFound = append(membersNotFound, model.Member{Email: email})
				continue
			}
			uc.l.Errorf(ctx, "internal.group.usecase.RemoveMembers.GetOneUser: %v", err)
			return group.GroupOutput{}, err
		}

		inThisGroup := false
		for _, m := range grp.Members {
			if m.Email == email {
				inThisGroup = true
				break
			}
		}
		if !inThisGroup {
			notInGroup = append(notInGroup, model.Member{Email: email})
			continue
		}

		removeEmails = append(removeEmails, email)
	}

	if len(removeEmails) == 0 {
		return group.GroupOutput{}, group.ErrNoneInGroup
	}

	// Removing everyone keeps the group alive with the first listed member.
	if len(grp.Members)-len(removeEmails) <= 0 {
		removeEmails = removeEmails[1:]
	}

	if err := uc.repo.RemoveMembers(ctx, sc, grp.ID, removeEmails); err != nil {
		uc.l.Errorf(ctx, "internal.group.usecase.RemoveMembers: %v", err)
		return group.GroupOutput{}, err
	}

	updated, err := uc.GetOne(ctx, sc, ip.Name)
	if err != nil {
		return group.GroupOutput{}, err
	}

	return group.GroupOutput{
		Group:           updated,
		NotInGroup:      notInGroup,
		MembersNotFound: membersNotFound,
	}, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, name string) error {
	grp, err := uc.GetOne(ctx, sc, name)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, sc, grp.ID); err != nil {
		uc.l.Errorf(ctx, "internal.group.usecase.Delete: %v", err)
		return err
	}

	return nil
}
