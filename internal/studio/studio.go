// studio.go
//
// Storefront Studio: a storefront app builder and its configuration persistence service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of storefront-studio.
// storefront-studio is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// storefront-studio is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with storefront-studio.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package studio implements the storefront studio commands on top of the
// editor, preview, export and persistence client packages.
package studio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/localnerve/storefront-studio/internal/advice"
	"github.com/localnerve/storefront-studio/internal/client"
	"github.com/localnerve/storefront-studio/internal/config"
	"github.com/localnerve/storefront-studio/internal/editor"
	"github.com/localnerve/storefront-studio/internal/export"
	"github.com/localnerve/storefront-studio/internal/navstate"
	"github.com/localnerve/storefront-studio/internal/preview"
	"github.com/localnerve/storefront-studio/internal/session"
	"github.com/localnerve/storefront-studio/internal/storefront"
	"github.com/localnerve/storefront-studio/internal/tui"
	"go.uber.org/zap"
)

// ErrNotLoggedIn is returned by commands that need an account.
var ErrNotLoggedIn = errors.New("not logged in: run `studio login` or `studio signup`")

// Studio holds the collaborators shared by every command.
type Studio struct {
	Config    *config.StudioConfig
	Client    *client.Client
	Session   *session.Store
	Advisor   *advice.Advisor
	Simulator *export.Simulator
	Logger    *zap.Logger
	Out       io.Writer
	Styles    tui.Styles
	Confirmer editor.Confirmer
}

// New wires a Studio. adv may be nil; advice then reports the assistant as unavailable.
func New(cfg *config.StudioConfig, sess *session.Store, adv *advice.Advisor, logger *zap.Logger, out io.Writer) *Studio {
	if logger == nil {
		logger = zap.NewNop()
	}
	if adv == nil {
		adv = advice.New(nil, logger)
	}
	return &Studio{
		Config:    cfg,
		Client:    client.New(cfg.APIURL, client.WithLogger(logger.Named("client"))),
		Session:   sess,
		Advisor:   adv,
		Simulator: export.NewSimulator(cfg.ExportDir, cfg.BuildInterval, logger.Named("export")),
		Logger:    logger,
		Out:       out,
		Styles:    tui.DefaultStyles(),
		Confirmer: tui.Confirmer{},
	}
}

func (s *Studio) println(a ...any) {
	fmt.Fprintln(s.Out, a...)
}

func (s *Studio) Login(ctx context.Context, email, password string) (client.User, error) {
	u, err := s.Client.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return client.User{}, userFacing(err)
	}
	return u, s.remember(u)
}

func (s *Studio) Signup(ctx context.Context, name, email, password string) (client.User, error) {
	u, err := s.Client.Signup(ctx, strings.TrimSpace(name), strings.TrimSpace(email), password)
	if err != nil {
		return client.User{}, userFacing(err)
	}
	return u, s.remember(u)
}

func (s *Studio) remember(u client.User) error {
	if err := s.Session.Save(u); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.println(s.Styles.Success.Render(fmt.Sprintf("Signed in as %s <%s>", u.Name, u.Email)))
	return nil
}

func (s *Studio) Logout() error {
	if err := s.Session.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.println(s.Styles.Subtle.Render("Signed out."))
	return nil
}

// CurrentUser returns the cached account or ErrNotLoggedIn.
func (s *Studio) CurrentUser() (client.User, error) {
	u, ok, err := s.Session.Load()
	if err != nil {
		return client.User{}, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return client.User{}, ErrNotLoggedIn
	}
	return u, nil
}

// LoadDocument fetches the stored document for the current user. A user
// with nothing stored starts from the default document.
func (s *Studio) LoadDocument(ctx context.Context) (storefront.Document, error) {
	doc, _, err := s.loadDocument(ctx)
	return doc, err
}

func (s *Studio) loadDocument(ctx context.Context) (doc storefront.Document, stored bool, err error) {
	u, err := s.CurrentUser()
	if err != nil {
		return storefront.Document{}, false, err
	}
	doc, err = s.Client.FetchConfig(ctx, u.ID.String())
	if errors.Is(err, client.ErrNotFound) {
		s.Logger.Info("no stored config, using defaults", zap.String("userId", u.ID.String()))
		return storefront.NewDefault(u.ID.String()), false, nil
	}
	if err != nil {
		return storefront.Document{}, false, userFacing(err)
	}
	return doc, true, nil
}

// EditDocument is LoadDocument for editing. The seed collections of a
// default document only carry local ids, so they are created on the server
// first and take its ids; products can then be added to them.
func (s *Studio) EditDocument(ctx context.Context) (storefront.Document, error) {
	doc, stored, err := s.loadDocument(ctx)
	if err != nil || stored {
		return doc, err
	}
	for i, c := range doc.Collections {
		id, err := s.Client.CreateCollection(ctx, doc.ID, c.Name)
		if err != nil {
			return storefront.Document{}, fmt.Errorf("register collection %q: %w", c.Name, userFacing(err))
		}
		s.Logger.Debug("registered seed collection", zap.String("local", c.ID), zap.String("id", id))
		doc.Collections[i].ID = id
	}
	return doc, nil
}

// Preview paints the stored document on screen with cartCount demo items.
func (s *Studio) Preview(ctx context.Context, screen storefront.Screen, cartCount int) error {
	doc, err := s.LoadDocument(ctx)
	if err != nil {
		return err
	}
	return s.paint(doc, screen, cartCount)
}

func (s *Studio) paint(doc storefront.Document, screen storefront.Screen, cartCount int) error {
	m := navstate.New()
	if screen != "" {
		if err := m.Navigate(screen); err != nil {
			return err
		}
	}
	for range cartCount {
		m.AddToCart()
	}
	s.println(tui.Paint(preview.Render(doc, m.State())))
	return nil
}

// Build runs the export simulator on the stored document, printing each step.
func (s *Studio) Build(ctx context.Context) (export.Artifact, error) {
	doc, err := s.LoadDocument(ctx)
	if err != nil {
		return export.Artifact{}, err
	}
	return s.build(ctx, doc)
}

func (s *Studio) build(ctx context.Context, doc storefront.Document) (export.Artifact, error) {
	a, err := s.Simulator.Run(ctx, doc, func(st export.Step) {
		if st.Done {
			return
		}
		s.println(tui.PaintStep(s.Styles, st))
	})
	if err != nil {
		return export.Artifact{}, err
	}
	where := a.FileName
	if a.Path != "" {
		where = a.Path
	}
	s.println(s.Styles.Success.Render("Export ready: " + where))
	return a, nil
}

// Publish stores doc for the current user. The document owner is always the
// signed-in account, whatever the document says.
func (s *Studio) Publish(ctx context.Context, doc storefront.Document) (int64, error) {
	u, err := s.CurrentUser()
	if err != nil {
		return 0, err
	}
	doc.UserID = u.ID.String()
	doc.ID = storefront.AppID(doc.UserID)
	version, err := s.Client.PublishConfig(ctx, doc)
	if err != nil {
		return 0, userFacing(err)
	}
	s.println(s.Styles.Success.Render(fmt.Sprintf("Published %s (version %d)", doc.Name, version)))
	return version, nil
}

// PublishFile publishes an exported configuration file. Unreadable fields
// fall back to defaults and are reported.
func (s *Studio) PublishFile(ctx context.Context, path string) (int64, error) {
	u, err := s.CurrentUser()
	if err != nil {
		return 0, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read export: %w", err)
	}
	doc, degraded := storefront.Unmarshal(data, u.ID.String())
	if len(degraded) > 0 {
		s.println(s.Styles.Warning.Render("Using defaults for: " + strings.Join(degraded, ", ")))
	}
	return s.Publish(ctx, doc)
}

// Advice asks the assistant about a builder section. An empty section asks
// about the first enabled tab of the stored document instead.
func (s *Studio) Advice(ctx context.Context, section, component string) (string, error) {
	if section == "" {
		doc, err := s.LoadDocument(ctx)
		if err != nil {
			return "", err
		}
		return s.storeAdvice(ctx, doc), nil
	}
	text := s.Advisor.TabAdvice(ctx, section, component)
	s.printAdvice(text)
	return text, nil
}

func (s *Studio) storeAdvice(ctx context.Context, doc storefront.Document) string {
	text := s.Advisor.StoreAdvice(ctx, doc, doc.Navigation[0])
	s.printAdvice(text)
	return text
}

func (s *Studio) printAdvice(text string) {
	s.println(s.Styles.Box.Render(s.Styles.Title.Render("✦ Smart Assistant") + "\n" + text))
}

// userFacing replaces a remote error with the server's message.
func userFacing(err error) error {
	var remote *client.RemoteError
	if errors.As(err, &remote) {
		return errors.New(remote.Message)
	}
	return err
}
