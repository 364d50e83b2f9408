// cmd/btp/cmd/init.go
package cmd

import (
	"github.com/AhmetHKarabulut/btp-app/cmd/btp/cmd/auth"
	"github.com/AhmetHKarabulut/btp-app/cmd/btp/cmd/member"
	"github.com/AhmetHKarabulut/btp-app/cmd/btp/cmd/notes"
	"github.com/AhmetHKarabulut/btp-app/cmd/btp/cmd/searchlog"
)

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.RefreshCmd)
	auth.AuthCmd.AddCommand(auth.StatusCmd)

	rootCmd.AddCommand(member.MemberCmd)
	member.MemberCmd.AddCommand(member.ListCmd)
	member.MemberCmd.AddCommand(member.GetCmd)
	member.MemberCmd.AddCommand(member.UpdateCmd)

	rootCmd.AddCommand(searchlog.SearchLogCmd)
	searchlog.SearchLogCmd.AddCommand(searchlog.AddCmd)
	searchlog.SearchLogCmd.AddCommand(searchlog.ListCmd)
	searchlog.SearchLogCmd.AddCommand(searchlog.DeleteCmd)

	rootCmd.AddCommand(notes.NotesCmd)
}
