package review

import "github.com/ONSdigital/dp-applications-api/models"

// Pending is the state an application holds before the commission acts.
// Its name is the empty string, matching the value the database stores.
var Pending = State{
	Name: models.StatusPending,
}

var Approved = State{
	Name:      models.StatusApproved,
	EnterFunc: ApproveApplication,
}

var Rejected = State{
	Name:      models.StatusRejected,
	EnterFunc: RejectApplication,
}
