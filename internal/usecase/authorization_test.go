package usecase

import (
	"errors"
	"testing"

	"cotafrete/internal/domain/entities"
)

func TestAuthorize(t *testing.T) {
	q := entities.Quotation{ID: "cot-1", ClienteID: "cli-1"}

	cases := []struct {
		name   string
		actor  entities.Principal
		action GuardAction
		want   error
	}{
		{name: "carrier submits", actor: carrierActor, action: ActionSubmitResponse, want: nil},
		{name: "client cannot submit", actor: clientActor, action: ActionSubmitResponse, want: ErrNotCarrier},
		{
			name:   "carrier cannot bid on own quotation",
			actor:  entities.Principal{ID: "cli-1", UserType: entities.UserTypeTransportadora},
			action: ActionSubmitResponse,
			want:   ErrSelfDealing,
		},
		{name: "owner accepts", actor: clientActor, action: ActionAcceptResponse, want: nil},
		{name: "owner rejects", actor: clientActor, action: ActionRejectResponse, want: nil},
		{name: "owner cancels", actor: clientActor, action: ActionCancel, want: nil},
		{name: "owner finalizes", actor: clientActor, action: ActionFinalize, want: nil},
		{name: "owner contests", actor: clientActor, action: ActionContest, want: nil},
		{
			name:   "stranger cannot accept",
			actor:  entities.Principal{ID: "cli-9", UserType: entities.UserTypeCliente},
			action: ActionAcceptResponse,
			want:   ErrNotOwner,
		},
		{
			name:   "carrier cannot finalize",
			actor:  carrierActor,
			action: ActionFinalize,
			want:   ErrNotOwner,
		},
		{name: "unknown action denied", actor: clientActor, action: GuardAction("unknown"), want: ErrNotAllowed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.actor, tc.action, q)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestResponseVisibility(t *testing.T) {
	q := entities.Quotation{ID: "cot-1", ClienteID: "cli-1"}

	t.Run("owner sees all", func(t *testing.T) {
		all, carrierID, err := ResponseVisibility(clientActor, q)
		if err != nil || !all || carrierID != "" {
			t.Fatalf("unexpected result: all=%v carrier=%q err=%v", all, carrierID, err)
		}
	})

	t.Run("admin sees all", func(t *testing.T) {
		admin := entities.Principal{ID: "adm-1", UserType: entities.UserTypeAdmin}
		all, _, err := ResponseVisibility(admin, q)
		if err != nil || !all {
			t.Fatalf("unexpected result: all=%v err=%v", all, err)
		}
	})

	t.Run("carrier sees only its own", func(t *testing.T) {
		all, carrierID, err := ResponseVisibility(carrierActor, q)
		if err != nil || all || carrierID != "tra-1" {
			t.Fatalf("unexpected result: all=%v carrier=%q err=%v", all, carrierID, err)
		}
	})

	t.Run("unrelated client denied", func(t *testing.T) {
		other := entities.Principal{ID: "cli-9", UserType: entities.UserTypeCliente}
		_, _, err := ResponseVisibility(other, q)
		if !errors.Is(err, ErrNotAllowed) {
			t.Fatalf("expected ErrNotAllowed, got %v", err)
		}
	})
}
