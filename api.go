package main

import (
	"errors"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

type roomRequest struct {
	Name     string
	Password string
}

type accessRequest struct {
	Password string
}

type moveRequest struct {
	Source string
	Target string
}

type roomResponse struct {
	Href string
	Room Room
}

type roomsResponse struct {
	Href  string
	Rooms []Room
}

type gameResponse struct {
	Href  string
	Room  Room
	Board []Square
}

type statusResponse struct {
	Href  string
	Score score
}

func errToHTTP(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.ErrNotFound
	}
	if errors.Is(err, errInvalidCoordinate) ||
		errors.Is(err, errNoPieceAtSource) ||
		errors.Is(err, errNotYourTurn) ||
		errors.Is(err, errIllegalMove) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return err
}

func requestID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return id, nil
}

func requestRoom(c echo.Context) (*Room, error) {
	id, err := requestID(c)
	if err != nil {
		return nil, err
	}
	return getRoom(id)
}

func responseRoom(room *Room) roomResponse {
	return roomResponse{Room: *room, Href: path.Join("/rooms", room.RoomID.String())}
}

func responseRooms(rooms []Room) roomsResponse {
	return roomsResponse{Rooms: rooms, Href: "/rooms"}
}

func responseGame(room *Room, squares []Square) gameResponse {
	return gameResponse{Room: *room, Board: squares, Href: path.Join("/rooms", room.RoomID.String())}
}

func responseStatus(room *Room, s score) statusResponse {
	return statusResponse{Score: s, Href: path.Join("/rooms", room.RoomID.String(), "status")}
}

func apiHandler() *echo.Echo {
	e := echo.New()

	e.POST("/rooms", func(c echo.Context) error {
		var request roomRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		if request.Name == "" || request.Password == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "name and password are required")
		}
		room, err := makeRoom(request.Name, request.Password)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusCreated, responseRoom(room))
	})
	e.GET("/rooms", func(c echo.Context) error {
		rooms, err := getRooms()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseRooms(rooms))
	})
	e.GET("/rooms/:id", func(c echo.Context) error {
		room, err := requestRoom(c)
		if err != nil {
			return errToHTTP(err)
		}
		if err := room.ensureOn(); err != nil {
			return err
		}
		squares, err := getSquares(room.ID)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseGame(room, squares))
	})
	e.POST("/rooms/:id/move", func(c echo.Context) error {
		room, err := requestRoom(c)
		if err != nil {
			return errToHTTP(err)
		}
		var request moveRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		if err := room.playMove(request.Source, request.Target); err != nil {
			return errToHTTP(err)
		}
		squares, err := getSquares(room.ID)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseGame(room, squares))
	})
	e.GET("/rooms/:id/status", func(c echo.Context) error {
		room, err := requestRoom(c)
		if err != nil {
			return errToHTTP(err)
		}
		s, err := room.status()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseStatus(room, s))
	})
	e.PATCH("/rooms/:id", func(c echo.Context) error {
		room, err := requestRoom(c)
		if err != nil {
			return errToHTTP(err)
		}
		var request roomRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		if request.Name == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "name is required")
		}
		if err := room.rename(request.Name, request.Password); err != nil {
			return errToHTTP(err)
		}
		return c.NoContent(http.StatusNoContent)
	})
	e.PATCH("/rooms/:id/end", func(c echo.Context) error {
		room, err := requestRoom(c)
		if err != nil {
			return errToHTTP(err)
		}
		var request accessRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		if err := room.finish(request.Password); err != nil {
			return errToHTTP(err)
		}
		s, err := room.status()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseStatus(room, s))
	})

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Gzip())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	return e
}
