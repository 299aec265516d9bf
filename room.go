package main

import (
	"net/http"
	"time"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	uuid "github.com/satori/go.uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Room room.
type Room struct {
	gorm.Model

	RoomID   uuid.UUID `gorm:"<-:create;type:varchar;size:40;uniqueIndex"`
	Name     string    `gorm:"not null"`
	Password string    `gorm:"not null" json:"-"`
	Team     string    `gorm:"not null"`
	GameOver bool
}

// roomIdle drops finished rooms nobody has touched for a day, squares
// included. Adapted maintenance sweep run from the main idle loop.
func roomIdle() error {
	dayAgo := time.Now().Add(-24 * time.Hour)
	var rooms []Room
	if err := db.Where("game_over = true").Where("updated_at < ?", dayAgo).Find(&rooms).Error; err != nil {
		return err
	}
	for _, room := range rooms {
		if err := db.Where(Square{RoomID: room.ID}).Delete(&Square{}).Error; err != nil {
			return err
		}
		if err := db.Delete(&room).Error; err != nil {
			return err
		}
	}
	return nil
}

func makeRoom(name, password string) (*Room, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	room := Room{RoomID: uuid.NewV4(), Name: name, Password: string(hash), Team: string(white)}
	if err := db.Create(&room).Error; err != nil {
		return nil, err
	}
	squares := initialSquares(room.ID)
	if err := db.Create(&squares).Error; err != nil {
		return nil, err
	}
	log.WithField("room", room.RoomID.String()).Info("room created")
	return getRoom(room.RoomID)
}

func getRoom(id uuid.UUID) (*Room, error) {
	var room Room
	if err := db.First(&room, Room{RoomID: id}).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// getRooms lists rooms still in progress.
func getRooms() ([]Room, error) {
	var rooms []Room
	if err := db.Where("game_over = false").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (room Room) checkPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(room.Password), []byte(password)); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "wrong password")
	}
	return nil
}

func (room Room) ensureOn() error {
	if room.GameOver {
		return echo.NewHTTPError(http.StatusConflict, "game is already over")
	}
	return nil
}

// playMove runs one engine move inside a transaction that locks the room row,
// serializing concurrent requests against the same room. The two squares the
// move touched, the turn and the liveness flag are persisted together.
func (room *Room) playMove(source, target string) error {
	if err := room.ensureOn(); err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		var locked Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&locked, room.ID).Error; err != nil {
			return err
		}
		if err := locked.ensureOn(); err != nil {
			return err
		}
		turn, err := parseTeam(locked.Team)
		if err != nil {
			return err
		}
		board, err := loadBoard(tx, locked.ID)
		if err != nil {
			return err
		}
		game := newChessGame(board, turn)
		if err := game.move(source, target); err != nil {
			return err
		}
		for _, text := range []string{source, target} {
			name, err := game.pieceNameAt(text)
			if err != nil {
				return err
			}
			if err := tx.Model(&Square{}).
				Where("room_id = ? AND position = ?", locked.ID, text).
				Update("piece", name).Error; err != nil {
				return err
			}
		}
		locked.Team = string(game.currentTurn())
		locked.GameOver = !game.isOn()
		if err := tx.Save(&locked).Error; err != nil {
			return err
		}
		*room = locked
		return nil
	})
}

// status recomputes the material score from the persisted snapshot.
func (room Room) status() (score, error) {
	board, err := loadBoard(db, room.ID)
	if err != nil {
		return score{}, err
	}
	return computeScore(board), nil
}

func (room *Room) finish(password string) error {
	if err := room.checkPassword(password); err != nil {
		return err
	}
	if err := room.ensureOn(); err != nil {
		return err
	}
	room.GameOver = true
	return db.Save(room).Error
}

func (room *Room) rename(name, password string) error {
	if err := room.checkPassword(password); err != nil {
		return err
	}
	if err := room.ensureOn(); err != nil {
		return err
	}
	room.Name = name
	return db.Save(room).Error
}
