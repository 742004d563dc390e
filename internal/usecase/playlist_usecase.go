package usecase

import (
	"clipstream/internal/entity"
	"clipstream/internal/repo/persistent"
	"clipstream/pkg/apperrors"
	"clipstream/pkg/logger"
	"clipstream/pkg/models"
)

type PlaylistUseCase interface {
	CreatePlaylist(ownerID, name, description string) (*models.Playlist, error)
	GetUserPlaylists(userID string) ([]entity.PlaylistSummary, error)
	GetPlaylist(playlistID string) (*entity.PlaylistDetail, error)
	UpdatePlaylist(playlistID, userID string, name, description *string) (*models.Playlist, error)
	DeletePlaylist(playlistID, userID string) error
	AddVideo(playlistID, videoID, userID string) (*entity.PlaylistDetail, error)
	RemoveVideo(playlistID, videoID, userID string) error
}

type playlistUseCase struct {
	playlistRepo persistent.PlaylistRepository
	videoRepo    persistent.VideoRepository
	userRepo     persistent.UserRepository
	logger       *logger.Logger
}

func NewPlaylistUseCase(
	playlistRepo persistent.PlaylistRepository,
	videoRepo persistent.VideoRepository,
	userRepo persistent.UserRepository,
	logger *logger.Logger,
) PlaylistUseCase {
	return &playlistUseCase{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *playlistUseCase) CreatePlaylist(ownerID, name, description string) (*models.Playlist, error) {
	if name == "" || description == "" {
		return nil, apperrors.Invalid("Name and description are required")
	}

	if _, err := uc.playlistRepo.FindByOwnerAndName(ownerID, name); err == nil {
		return nil, apperrors.Conflict("A playlist with the same name already exists")
	} else if !persistent.IsNotFound(err) {
		return nil, apperrors.Internal("Failed to check playlist name", err)
	}

	playlist := &models.Playlist{
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
	}
	if err := uc.playlistRepo.Create(playlist); err != nil {
		uc.logger.Error("Failed to create playlist: %v", err)
		return nil, apperrors.Internal("Failed to create playlist", err)
	}
	return playlist, nil
}

func (uc *playlistUseCase) GetUserPlaylists(userID string) ([]entity.PlaylistSummary, error) {
	if err := validateID(userID, "user"); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.Exists(userID)
	if err != nil {
		return nil, apperrors.Internal("Failed to check user", err)
	}
	if !exists {
		return nil, apperrors.NotFound("User not found")
	}

	playlists, err := uc.playlistRepo.ListByOwner(userID)
	if err != nil {
		uc.logger.Error("Failed to list playlists: %v", err)
		return nil, apperrors.Internal("Failed to fetch playlists", err)
	}
	return playlists, nil
}

func (uc *playlistUseCase) GetPlaylist(playlistID string) (*entity.PlaylistDetail, error) {
	if err := validateID(playlistID, "playlist"); err != nil {
		return nil, err
	}

	detail, err := uc.playlistRepo.GetDetail(playlistID)
	if err != nil {
		if persistent.IsNotFound(err) {
			return nil, apperrors.NotFound("Playlist not found")
		}
		return nil, apperrors.Internal("Failed to fetch playlist", err)
	}
	return detail, nil
}

func (uc *playlistUseCase) UpdatePlaylist(playlistID, userID string, name, description *string) (*models.Playlist, error) {
	if err := validateID(playlistID, "playlist"); err != nil {
		return nil, err
	}
	if name == nil && description == nil {
		return nil, apperrors.Invalid("At least one field is required")
	}

	playlist, err := uc.findOwned(playlistID, userID, "update")
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if name != nil && *name != playlist.Name {
		if _, err := uc.playlistRepo.FindByOwnerAndName(userID, *name); err == nil {
			return nil, apperrors.Conflict("A playlist with the same name already exists")
		} else if !persistent.IsNotFound(err) {
			return nil, apperrors.Internal("Failed to check playlist name", err)
		}
		fields["name"] = *name
	}
	if description != nil {
		fields["description"] = *description
	}
	if len(fields) == 0 {
		return playlist, nil
	}

	updated, err := uc.playlistRepo.Update(playlistID, fields)
	if err != nil {
		return nil, apperrors.Internal("Failed to update playlist", err)
	}
	return updated, nil
}

func (uc *playlistUseCase) DeletePlaylist(playlistID, userID string) error {
	if err := validateID(playlistID, "playlist"); err != nil {
		return err
	}

	if _, err := uc.findOwned(playlistID, userID, "delete"); err != nil {
		return err
	}

	if err := uc.playlistRepo.Delete(playlistID); err != nil {
		uc.logger.Error("Failed to delete playlist %s: %v", playlistID, err)
		return apperrors.Internal("Failed to delete playlist", err)
	}
	return nil
}

func (uc *playlistUseCase) AddVideo(playlistID, videoID, userID string) (*entity.PlaylistDetail, error) {
	if err := validateID(playlistID, "playlist"); err != nil {
		return nil, err
	}
	if err := validateID(videoID, "video"); err != nil {
		return nil, err
	}

	if _, err := uc.findOwned(playlistID, userID, "add video to"); err != nil {
		return nil, err
	}

	exists, err := uc.videoRepo.Exists(videoID)
	if err != nil {
		return nil, apperrors.Internal("Failed to check video", err)
	}
	if !exists {
		return nil, apperrors.NotFound("Video not found")
	}

	added, err := uc.playlistRepo.AddVideo(playlistID, videoID)
	if err != nil {
		uc.logger.Error("Failed to add video to playlist: %v", err)
		return nil, apperrors.Internal("Failed to add video to playlist", err)
	}
	if !added {
		return nil, apperrors.Conflict("Video already exists in this playlist")
	}

	return uc.GetPlaylist(playlistID)
}

func (uc *playlistUseCase) RemoveVideo(playlistID, videoID, userID string) error {
	if err := validateID(playlistID, "playlist"); err != nil {
		return err
	}
	if err := validateID(videoID, "video"); err != nil {
		return err
	}

	if _, err := uc.findOwned(playlistID, userID, "remove video from"); err != nil {
		return err
	}

	removed, err := uc.playlistRepo.RemoveVideo(playlistID, videoID)
	if err != nil {
		uc.logger.Error("Failed to remove video from playlist: %v", err)
		return apperrors.Internal("Failed to remove video from playlist", err)
	}
	if !removed {
		return apperrors.Conflict("Video not found in this playlist")
	}
	return nil
}

func (uc *playlistUseCase) findOwned(playlistID, userID, action string) (*models.Playlist, error) {
	playlist, err := uc.playlistRepo.FindByID(playlistID)
	if err != nil {
		if persistent.IsNotFound(err) {
			return nil, apperrors.NotFound("Playlist not found")
		}
		return nil, apperrors.Internal("Failed to fetch playlist", err)
	}
	if playlist.OwnerID != userID {
		return nil, apperrors.Forbidden("Unauthorized to " + action + " this playlist")
	}
	return playlist, nil
}
