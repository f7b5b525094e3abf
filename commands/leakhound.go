package commands

type LeakhoundCommand struct {
	Audit   AuditCommand   `command:"audit" description:"Audit every configured repository for leaked credentials"`
	Version VersionCommand `command:"version" description:"Displays leakhound version" alias:"V"`
}

var Leakhound LeakhoundCommand
