package vault

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNewObject(t *testing.T) {
	t.Run("creates and decodes", func(t *testing.T) {
		client, rec := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
			respondJSON(w, `{"objVer":{"type":7,"id":101,"version":1},"title":"Quarterly Report"}`)
		})

		info := &ObjectCreationInfo{
			Title: "Quarterly Report",
			Class: 3,
			Properties: map[string]interface{}{
				"department": "finance",
			},
		}
		ver, err := client.Objects.CreateNewObject(context.Background(), 7, info)
		require.NoError(t, err)

		assert.Equal(t, "POST", rec.last().Method)
		assert.Equal(t, "/REST/objects/7", rec.last().Path)
		assert.Contains(t, rec.last().Body, `"title":"Quarterly Report"`)

		assert.Equal(t, ObjVer{ObjID: ObjID{Type: 7, ID: 101}, Version: 1}, ver.ObjVer)
		assert.Equal(t, "Quarterly Report", ver.Title)
	})

	t.Run("rejects negative type without a request", func(t *testing.T) {
		client, rec := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
			respondJSON(w, `{}`)
		})

		_, err := client.Objects.CreateNewObject(context.Background(), -1, &ObjectCreationInfo{})
		assert.True(t, IsInvalidArgument(err))
		assert.Equal(t, 0, rec.count())
	})

	t.Run("rejects nil creation info without a request", func(t *testing.T) {
		client, rec := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
			respondJSON(w, `{}`)
		})

		_, err := client.Objects.CreateNewObject(context.Background(), 0, nil)
		assert.True(t, IsInvalidArgument(err))
		assert.Equal(t, 0, rec.count())
	})
}

func TestSetCheckoutStatus(t *testing.T) {
	t.Run("uses latest segment and value envelope", func(t *testing.T) {
		client, rec := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
			respondJSON(w, `{"objVer":{"type":0,"id":42,"version":6},"checkedOut":1}`)
		})

		ver, err := client.Objects.SetCheckoutStatus(context.Background(), ObjID{Type: 0, ID: 42}, CheckedOutToMe)
		require.NoError(t, err)

		assert.Equal(t, "PUT", rec.last().Method)
		assert.Equal(t, "/REST/objects/0/42/latest/checkedout", rec.last().Path)
		assert.JSONEq(t, `{"Value":1}`, rec.last().Body)
		assert.Equal(t, CheckedOutToMe, ver.CheckedOut)
	})

	t.Run("explicit version in path", func(t *testing.T) {
		client, rec := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
			respondJSON(w, `{"objVer":{"type":0,"id":42,"version":5},"checkedOut":0}`)
		})

		_, err := client.Objects.SetVersionCheckoutStatus(context.Background(),
			ObjVer{ObjID: ObjID{Type: 0, ID: 42}, Version: 5}, CheckedIn)
		require.NoError(t, err)
		assert.Equal(t, "/REST/objects/0/42/5/checkedout", rec.last().Path)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		client, rec := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
			respondJSON(w, `{}`)
		})

		_, err := client.Objects.SetCheckoutStatus(context.Background(), ObjID{Type: 0, ID: 42}, CheckoutStatus(9))
		assert.True(t, IsInvalidArgument(err))
		assert.Equal(t, 0, rec.count())
	})
}

func TestCheckOutCheckInEquivalence(t *testing.T) {
	capture := func(t *testing.T, call func(*Client) error) recordedRequest {
		t.Helper()
		client, rec := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
			respondJSON(w, `{"objVer":{"type":1,"id":7,"version":2}}`)
		})
		require.NoError(t, call(client))
		return rec.last()
	}

	id := ObjID{Type: 1, ID: 7}

	t.Run("CheckOut matches SetCheckoutStatus", func(t *testing.T) {
		viaConvenience := capture(t, func(c *Client) error {
			_, err := c.Objects.CheckOut(context.Background(), id)
			return err
		})
		viaExplicit := capture(t, func(c *Client) error {
			_, err := c.Objects.SetCheckoutStatus(context.Background(), id, CheckedOutToMe)
			return err
		})
		assert.Equal(t, viaExplicit, viaConvenience)
	})

	t.Run("CheckIn matches SetCheckoutStatus", func(t *testing.T) {
		viaConvenience := capture(t, func(c *Client) error {
			_, err := c.Objects.CheckIn(context.Background(), id)
			return err
		})
		viaExplicit := capture(t, func(c *Client) error {
			_, err := c.Objects.SetCheckoutStatus(context.Background(), id, CheckedIn)
			return err
		})
		assert.Equal(t, viaExplicit, viaConvenience)
	})
}

func TestGetCheckoutStatus(t *testing.T) {
	t.Run("reads back the written status", func(t *testing.T) {
		// Stateful mock: the PUT stores the status, the GET serves it.
		var mu sync.Mutex
		stored := CheckedIn

		client, _ := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
			mu.Lock()
			defer mu.Unlock()
			switch req.Method {
			case http.MethodPut:
				var v statusValue
				require.NoError(t, json.NewDecoder(req.Body).Decode(&v))
				stored = v.Value
				respondJSON(w, `{"objVer":{"type":0,"id":42,"version":6}}`)
			case http.MethodGet:
				respondJSON(w, `{"Value":`+strconv.Itoa(int(stored))+`}`)
			}
		})

		id := ObjID{Type: 0, ID: 42}
		_, err := client.Objects.SetCheckoutStatus(context.Background(), id, CheckedOutToMe)
		require.NoError(t, err)

		status, err := client.Objects.GetCheckoutStatus(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, status)
		assert.Equal(t, CheckedOutToMe, *status)
	})

	t.Run("uses latest segment", func(t *testing.T) {
		client, rec := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
			respondJSON(w, `{"Value":2}`)
		})

		status, err := client.Objects.GetCheckoutStatus(context.Background(), ObjID{Type: 4, ID: 8})
		require.NoError(t, err)
		assert.Equal(t, "GET", rec.last().Method)
		assert.Equal(t, "/REST/objects/4/8/latest/checkedout", rec.last().Path)
		require.NotNil(t, status)
		assert.Equal(t, CheckedOut, *status)
	})

	t.Run("explicit version", func(t *testing.T) {
		client, rec := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
			respondJSON(w, `{"Value":0}`)
		})

		status, err := client.Objects.GetVersionCheckoutStatus(context.Background(),
			ObjVer{ObjID: ObjID{Type: 4, ID: 8}, Version: 3})
		require.NoError(t, err)
		assert.Equal(t, "/REST/objects/4/8/3/checkedout", rec.last().Path)
		require.NotNil(t, status)
		assert.Equal(t, CheckedIn, *status)
	})
}

func TestUndoCheckout(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
		respondJSON(w, `{"objVer":{"type":2,"id":30,"version":4},"checkedOut":0}`)
	})

	ver, err := client.Objects.UndoCheckout(context.Background(),
		ObjVer{ObjID: ObjID{Type: 2, ID: 30}, Version: 5})
	require.NoError(t, err)
	assert.Equal(t, "DELETE", rec.last().Method)
	assert.Equal(t, "/REST/objects/2/30/5/checkedout", rec.last().Path)
	assert.Equal(t, 4, ver.ObjVer.Version)
}

func TestGetDeletedStatus(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
		respondJSON(w, `{"Value":true}`)
	})

	deleted, err := client.Objects.GetDeletedStatus(context.Background(), ObjID{Type: 0, ID: 12})
	require.NoError(t, err)
	assert.Equal(t, "GET", rec.last().Method)
	assert.Equal(t, "/REST/objects/0/12/deleted", rec.last().Path)
	require.NotNil(t, deleted)
	assert.True(t, *deleted)
}

func TestDeleteUndeleteObject(t *testing.T) {
	t.Run("delete", func(t *testing.T) {
		client, rec := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
			respondJSON(w, `{"objVer":{"type":0,"id":12,"version":2},"deleted":true}`)
		})

		ver, err := client.Objects.DeleteObject(context.Background(), ObjID{Type: 0, ID: 12})
		require.NoError(t, err)
		assert.Equal(t, "PUT", rec.last().Method)
		assert.Equal(t, "/REST/objects/0/12/deleted", rec.last().Path)
		assert.JSONEq(t, `{"Value":true}`, rec.last().Body)
		assert.True(t, ver.Deleted)
	})

	t.Run("undelete", func(t *testing.T) {
		client, rec := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
			respondJSON(w, `{"objVer":{"type":0,"id":12,"version":2},"deleted":false}`)
		})

		ver, err := client.Objects.UndeleteObject(context.Background(), ObjID{Type: 0, ID: 12})
		require.NoError(t, err)
		assert.JSONEq(t, `{"Value":false}`, rec.last().Body)
		assert.False(t, ver.Deleted)
	})
}

func TestGetHistory(t *testing.T) {
	t.Run("preserves server order", func(t *testing.T) {
		client, rec := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
			// Intentionally gappy and unsorted: served order is the contract.
			respondJSON(w, `[
				{"objVer":{"type":0,"id":5,"version":9}},
				{"objVer":{"type":0,"id":5,"version":4}},
				{"objVer":{"type":0,"id":5,"version":7}}
			]`)
		})

		history, err := client.Objects.GetHistory(context.Background(), ObjID{Type: 0, ID: 5})
		require.NoError(t, err)
		assert.Equal(t, "/REST/objects/0/5/history", rec.last().Path)

		versions := make([]int, 0, len(history))
		for _, v := range history {
			versions = append(versions, v.ObjVer.Version)
		}
		assert.Equal(t, []int{9, 4, 7}, versions)
	})

	t.Run("empty history", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
			respondJSON(w, `[]`)
		})

		history, err := client.Objects.GetHistory(context.Background(), ObjID{Type: 0, ID: 5})
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}

func TestScalarIdentifierValidation(t *testing.T) {
	invalid := []struct {
		name string
		id   ObjID
	}{
		{"zero object id", ObjID{Type: 0, ID: 0}},
		{"negative object id", ObjID{Type: 0, ID: -4}},
		{"negative type id", ObjID{Type: -1, ID: 5}},
	}

	ops := []struct {
		name string
		call func(*Client, ObjID) error
	}{
		{"GetLatestObjectVersion", func(c *Client, id ObjID) error {
			_, err := c.Objects.GetLatestObjectVersion(context.Background(), id)
			return err
		}},
		{"SetCheckoutStatus", func(c *Client, id ObjID) error {
			_, err := c.Objects.SetCheckoutStatus(context.Background(), id, CheckedOutToMe)
			return err
		}},
		{"GetCheckoutStatus", func(c *Client, id ObjID) error {
			_, err := c.Objects.GetCheckoutStatus(context.Background(), id)
			return err
		}},
		{"GetDeletedStatus", func(c *Client, id ObjID) error {
			_, err := c.Objects.GetDeletedStatus(context.Background(), id)
			return err
		}},
		{"DeleteObject", func(c *Client, id ObjID) error {
			_, err := c.Objects.DeleteObject(context.Background(), id)
			return err
		}},
		{"GetHistory", func(c *Client, id ObjID) error {
			_, err := c.Objects.GetHistory(context.Background(), id)
			return err
		}},
		{"AddToFavorites", func(c *Client, id ObjID) error {
			_, err := c.Favorites.AddToFavorites(context.Background(), id)
			return err
		}},
		{"RemoveFromFavorites", func(c *Client, id ObjID) error {
			_, err := c.Favorites.RemoveFromFavorites(context.Background(), id)
			return err
		}},
	}

	for _, op := range ops {
		for _, tc := range invalid {
			t.Run(op.name+"/"+tc.name, func(t *testing.T) {
				client, rec := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
					respondJSON(w, `{}`)
				})
				err := op.call(client, tc.id)
				assert.True(t, IsInvalidArgument(err), "expected InvalidArgumentError, got %v", err)
				assert.Equal(t, 0, rec.count(), "no request may be issued for invalid arguments")
			})
		}
	}
}

func TestNegativeVersionValidation(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, req *http.Request) {
		respondJSON(w, `{}`)
	})

	ver := ObjVer{ObjID: ObjID{Type: 0, ID: 3}, Version: -1}

	_, err := client.Objects.SetVersionCheckoutStatus(context.Background(), ver, CheckedIn)
	assert.True(t, IsInvalidArgument(err))

	_, err = client.Objects.GetVersionCheckoutStatus(context.Background(), ver)
	assert.True(t, IsInvalidArgument(err))

	_, err = client.Objects.UndoCheckout(context.Background(), ver)
	assert.True(t, IsInvalidArgument(err))

	assert.Equal(t, 0, rec.count())
}
