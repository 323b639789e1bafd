// controllers/srv.go
package controllers

import (
	"movie_rental_api/app"
	"movie_rental_api/db"
	"movie_rental_api/session"
)

type Srv struct {
	Repo    *db.Repo
	AppSess *session.AppSessionStore
	Cfg     app.Config
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo:    db.NewRepo(a.DB),
		AppSess: a.AppSessions(),
		Cfg:     a.Config,
	}
}
