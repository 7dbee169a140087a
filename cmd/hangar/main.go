package main

import (
	"errors"
	"fmt"
	"os"

	"hangar/internal/app"
	"hangar/internal/config"
	"hangar/internal/hangar"
	"hangar/internal/model"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates a HangarApp. The caller must defer
// app.Close(). operation identifies the CLI command being run.
func newApp(operation string) (*app.HangarApp, error) {
	cfg, err := readConfig()
	if err != nil {
		return nil, err
	}

	a, err := app.NewHangarApp(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

func readConfig() (*config.Config, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

// readPassphrase prompts for a passphrase without echo.
func readPassphrase(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	return string(pw), nil
}

// contentFromFlags assembles build content fields from command flags.
func contentFromFlags(cmd *cobra.Command) hangar.BuildContent {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	buildVideo, _ := cmd.Flags().GetString("build-video")
	flightVideo, _ := cmd.Flags().GetString("flight-video")
	sourceAircraft, _ := cmd.Flags().GetString("source-aircraft")
	return hangar.BuildContent{
		Title:            title,
		Description:      description,
		BuildVideoURL:    buildVideo,
		FlightVideoURL:   flightVideo,
		SourceAircraftID: sourceAircraft,
	}
}

// addContentFlags registers the shared content flags on build-editing commands.
func addContentFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Build title")
	cmd.Flags().String("description", "", "Build description")
	cmd.Flags().String("build-video", "", "Build video URL")
	cmd.Flags().String("flight-video", "", "Flight video URL")
	cmd.Flags().String("source-aircraft", "", "Source aircraft ID")
	cmd.Flags().StringArray("part", nil, "Part spec GEAR_TYPE:CATALOG_ITEM_ID[:POSITION[:NOTES]] (repeatable)")
}

func printBuild(v *hangar.BuildView) {
	b := v.Build
	fmt.Printf("ID:       %s\n", b.ID)
	fmt.Printf("Status:   %s\n", b.Status)
	if b.OwnerUserID != "" {
		fmt.Printf("Owner:    %s\n", b.OwnerUserID)
	}
	fmt.Printf("Title:    %s\n", b.Title)
	if b.Description != "" {
		fmt.Printf("Desc:     %s\n", b.Description)
	}
	if b.BuildVideoURL != "" {
		fmt.Printf("Build video:  %s\n", b.BuildVideoURL)
	}
	if b.FlightVideoURL != "" {
		fmt.Printf("Flight video: %s\n", b.FlightVideoURL)
	}
	if b.ImageAssetID != "" {
		fmt.Printf("Image:    %s\n", b.ImageAssetID)
	}
	if b.Token != "" {
		fmt.Printf("Token:    %s\n", b.Token)
	}
	if b.ExpiresAt != nil {
		fmt.Printf("Expires:  %s\n", b.ExpiresAt.Format("2006-01-02 15:04:05"))
	}
	if b.ModerationReason != "" {
		fmt.Printf("Reason:   %s\n", b.ModerationReason)
	}
	if v.StagedRevisionID != "" {
		fmt.Printf("Staged revision: %s\n", v.StagedRevisionID)
	}
	if len(v.Parts) > 0 {
		fmt.Println("Parts:")
		for _, p := range v.Parts {
			notes := ""
			if p.Notes != "" {
				notes = "  (" + p.Notes + ")"
			}
			fmt.Printf("  %-18s %s  #%d%s\n", p.GearType, p.CatalogItemID, p.Position, notes)
		}
	}
}

func printBuildList(builds []*model.Build) {
	if len(builds) == 0 {
		fmt.Println("No builds found.")
		return
	}
	for _, b := range builds {
		fmt.Printf("%s  %-14s  %s  %s\n",
			b.ID, b.Status, b.UpdatedAt.Format("2006-01-02 15:04:05"), b.Title)
	}
}

func printValidationFailure(res *hangar.ValidationResult) {
	fmt.Println("Validation failed:")
	for _, e := range res.Errors {
		fmt.Printf("  %-20s %s\n", e.Category, e.Code)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangar",
	Short: "Drone build lifecycle and moderation workflow engine",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Base Dir: %s\n", defaults["base_dir"])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Base Dir:  %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:   %s\n", cfg.LogDir)
		fmt.Printf("Database:  %s\n", cfg.Database.Type)
		fmt.Printf("Assets:    %s\n", cfg.Assets.Type)
		fmt.Printf("Catalog:   %s\n", cfg.Catalog.Type)
		return nil
	},
}

// keys command
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage encryption keys",
}

var keysInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate the image encryption key pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SetupKeys")
		if err != nil {
			return err
		}
		defer a.Close()

		pw, err := readPassphrase("Passphrase: ")
		if err != nil {
			return err
		}
		confirm, err := readPassphrase("Confirm passphrase: ")
		if err != nil {
			return err
		}
		if pw != confirm {
			return fmt.Errorf("passphrases do not match")
		}

		if err := a.SetupKeys(pw); err != nil {
			return err
		}
		fmt.Println("Encryption keys generated.")
		return nil
	},
}

// migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readConfig()
		if err != nil {
			return err
		}
		if err := app.Migrate(cfg); err != nil {
			return err
		}
		fmt.Println("Database is up to date.")
		return nil
	},
}

// build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Manage owned builds",
}

var buildCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a draft build",
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, _ := cmd.Flags().GetString("owner")
		parts, _ := cmd.Flags().GetStringArray("part")

		a, err := newApp("CreateDraft")
		if err != nil {
			return err
		}
		defer a.Close()

		b, err := a.CreateDraft(owner, contentFromFlags(cmd), parts)
		if err != nil {
			return err
		}
		fmt.Printf("Created draft %s\n", b.ID)
		return nil
	},
}

var buildShowCmd = &cobra.Command{
	Use:   "show BUILD_ID",
	Short: "View a build",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, _ := cmd.Flags().GetString("owner")

		a, err := newApp("GetBuild")
		if err != nil {
			return err
		}
		defer a.Close()

		var view *hangar.BuildView
		if owner != "" {
			view, err = a.GetBuild(owner, args[0])
		} else {
			view, err = a.GetPublicBuild(args[0])
		}
		if err != nil {
			return err
		}
		printBuild(view)
		return nil
	},
}

var buildListCmd = &cobra.Command{
	Use:   "list",
	Short: "List an owner's builds",
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, _ := cmd.Flags().GetString("owner")

		a, err := newApp("ListBuilds")
		if err != nil {
			return err
		}
		defer a.Close()

		builds, err := a.ListBuilds(owner)
		if err != nil {
			return err
		}
		printBuildList(builds)
		return nil
	},
}

var buildEditCmd = &cobra.Command{
	Use:   "edit BUILD_ID",
	Short: "Edit a build (edits to published builds stage a revision)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, _ := cmd.Flags().GetString("owner")
		parts, _ := cmd.Flags().GetStringArray("part")
		replaceParts, _ := cmd.Flags().GetBool("replace-parts")

		a, err := newApp("UpdateBuild")
		if err != nil {
			return err
		}
		defer a.Close()

		b, err := a.UpdateBuild(owner, args[0], contentFromFlags(cmd), parts, replaceParts)
		if err != nil {
			return err
		}
		if b.ID != args[0] {
			fmt.Printf("Edit staged on revision %s\n", b.ID)
		} else {
			fmt.Printf("Updated build %s\n", b.ID)
		}
		return nil
	},
}

var buildSubmitCmd = &cobra.Command{
	Use:   "submit BUILD_ID",
	Short: "Submit a build for review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, _ := cmd.Flags().GetString("owner")

		a, err := newApp("SubmitForReview")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.SubmitForReview(owner, args[0]); err != nil {
			return err
		}
		fmt.Printf("Submitted %s for review\n", args[0])
		return nil
	},
}

var buildDeleteCmd = &cobra.Command{
	Use:   "delete BUILD_ID",
	Short: "Delete a draft or unpublished build",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, _ := cmd.Flags().GetString("owner")

		a, err := newApp("DeleteBuild")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.DeleteBuild(owner, args[0]); err != nil {
			if errors.Is(err, hangar.ErrMustUnpublish) {
				return fmt.Errorf("build %s is live: unpublish it before deleting", args[0])
			}
			return err
		}
		fmt.Printf("Deleted build %s\n", args[0])
		return nil
	},
}

// image command
var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Manage build images",
}

var imageAttachCmd = &cobra.Command{
	Use:   "attach BUILD_ID IMAGE_FILE",
	Short: "Encrypt and attach an image to a build",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, _ := cmd.Flags().GetString("owner")

		a, err := newApp("AttachImage")
		if err != nil {
			return err
		}
		defer a.Close()

		assetID, b, err := a.AttachImage(owner, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Attached asset %s to %s\n", assetID, b.ID)
		return nil
	},
}

var imageExportCmd = &cobra.Command{
	Use:   "export ASSET_ID OUTPUT_FILE",
	Short: "Decrypt a stored image to a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ExportImage")
		if err != nil {
			return err
		}
		defer a.Close()

		pw, err := readPassphrase("Passphrase: ")
		if err != nil {
			return err
		}

		out, err := os.Create(args[1])
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer out.Close()

		if err := a.ExportImage(args[0], out, pw); err != nil {
			os.Remove(args[1])
			return err
		}
		fmt.Printf("Exported asset %s to %s\n", args[0], args[1])
		return nil
	},
}

// mod command
var modCmd = &cobra.Command{
	Use:   "mod",
	Short: "Moderation operations",
}

var modQueueCmd = &cobra.Command{
	Use:   "queue",
	Short: "View the moderation queue",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ModerationQueue")
		if err != nil {
			return err
		}
		defer a.Close()

		builds, err := a.ModerationQueue()
		if err != nil {
			return err
		}
		if len(builds) == 0 {
			fmt.Println("Queue is empty.")
			return nil
		}
		for _, b := range builds {
			revision := ""
			if b.RevisionOfBuildID != "" {
				revision = "  revision of " + b.RevisionOfBuildID
			}
			fmt.Printf("%s  %s  %s%s\n",
				b.ID, b.UpdatedAt.Format("2006-01-02 15:04:05"), b.Title, revision)
		}
		return nil
	},
}

var modApproveCmd = &cobra.Command{
	Use:   "approve BUILD_ID",
	Short: "Approve and publish a pending build",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Approve")
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := a.Approve(args[0])
		if err != nil {
			return err
		}
		if res != nil {
			printValidationFailure(res)
			return fmt.Errorf("build %s failed validation", args[0])
		}
		fmt.Printf("Approved %s\n", args[0])
		return nil
	},
}

var modPublishCmd = &cobra.Command{
	Use:   "publish BUILD_ID",
	Short: "Publish a build directly",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Publish")
		if err != nil {
			return err
		}
		defer a.Close()

		res, err := a.Publish(args[0])
		if err != nil {
			return err
		}
		if res != nil {
			printValidationFailure(res)
			return fmt.Errorf("build %s failed validation", args[0])
		}
		fmt.Printf("Published %s\n", args[0])
		return nil
	},
}

var modDeclineCmd = &cobra.Command{
	Use:   "decline BUILD_ID",
	Short: "Decline a pending or published build",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reason, _ := cmd.Flags().GetString("reason")

		a, err := newApp("Decline")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Decline(args[0], reason); err != nil {
			return err
		}
		fmt.Printf("Declined %s\n", args[0])
		return nil
	},
}

var modUnpublishCmd = &cobra.Command{
	Use:   "unpublish BUILD_ID",
	Short: "Retire a published build",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reason, _ := cmd.Flags().GetString("reason")

		a, err := newApp("Unpublish")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Unpublish(args[0], reason); err != nil {
			return err
		}
		fmt.Printf("Unpublished %s\n", args[0])
		return nil
	},
}

// temp command
var tempCmd = &cobra.Command{
	Use:   "temp",
	Short: "Manage anonymous temp builds",
}

var tempCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an anonymous temp build",
	RunE: func(cmd *cobra.Command, args []string) error {
		parts, _ := cmd.Flags().GetStringArray("part")

		a, err := newApp("CreateTemp")
		if err != nil {
			return err
		}
		defer a.Close()

		b, err := a.CreateTemp(contentFromFlags(cmd), parts)
		if err != nil {
			return err
		}
		fmt.Printf("Created temp build %s\n", b.ID)
		fmt.Printf("Token: %s\n", b.Token)
		fmt.Printf("Expires: %s\n", b.ExpiresAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}

var tempShowCmd = &cobra.Command{
	Use:   "show TOKEN",
	Short: "View a temp or shared build by token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("GetTemp")
		if err != nil {
			return err
		}
		defer a.Close()

		view, err := a.GetTemp(args[0])
		if err != nil {
			return err
		}
		printBuild(view)
		return nil
	},
}

var tempEditCmd = &cobra.Command{
	Use:   "edit TOKEN",
	Short: "Edit a temp build (yields a new token)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parts, _ := cmd.Flags().GetStringArray("part")
		replaceParts, _ := cmd.Flags().GetBool("replace-parts")

		a, err := newApp("UpdateTemp")
		if err != nil {
			return err
		}
		defer a.Close()

		b, err := a.UpdateTemp(args[0], contentFromFlags(cmd), parts, replaceParts)
		if err != nil {
			if errors.Is(err, hangar.ErrSharedReadOnly) {
				return fmt.Errorf("shared builds are read-only")
			}
			return err
		}
		fmt.Printf("Edited as %s\n", b.ID)
		fmt.Printf("New token: %s\n", b.Token)
		return nil
	},
}

var tempShareCmd = &cobra.Command{
	Use:   "share TOKEN",
	Short: "Promote a temp build to a permanent shared snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ShareTemp")
		if err != nil {
			return err
		}
		defer a.Close()

		b, err := a.ShareTemp(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Shared build %s at token %s\n", b.ID, b.Token)
		return nil
	},
}

// react command
var reactCmd = &cobra.Command{
	Use:   "react",
	Short: "Manage reactions on published builds",
}

var reactSetCmd = &cobra.Command{
	Use:   "set BUILD_ID VALUE",
	Short: "Set a like or dislike on a build",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")

		a, err := newApp("SetReaction")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.SetReaction(user, args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Reaction recorded on %s\n", args[0])
		return nil
	},
}

var reactClearCmd = &cobra.Command{
	Use:   "clear BUILD_ID",
	Short: "Clear your reaction on a build",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")

		a, err := newApp("ClearReaction")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.ClearReaction(user, args[0]); err != nil {
			return err
		}
		fmt.Printf("Reaction cleared on %s\n", args[0])
		return nil
	},
}

var reactShowCmd = &cobra.Command{
	Use:   "show BUILD_ID",
	Short: "View reaction counts on a build",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")

		a, err := newApp("GetReactions")
		if err != nil {
			return err
		}
		defer a.Close()

		summary, err := a.GetReactions(args[0], user)
		if err != nil {
			return err
		}
		fmt.Printf("Likes:    %d\n", summary.Likes)
		fmt.Printf("Dislikes: %d\n", summary.Dislikes)
		if summary.Mine != "" {
			fmt.Printf("Yours:    %s\n", summary.Mine)
		}
		return nil
	},
}

// sweep command
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Delete expired temp builds",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Sweep")
		if err != nil {
			return err
		}
		defer a.Close()

		n, err := a.Sweep()
		if err != nil {
			return err
		}
		fmt.Printf("Swept %d expired temp build(s)\n", n)
		return nil
	},
}

func init() {
	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	// keys subcommands
	keysCmd.AddCommand(keysInitCmd)

	// build subcommands
	buildCmd.AddCommand(buildCreateCmd)
	buildCmd.AddCommand(buildShowCmd)
	buildCmd.AddCommand(buildListCmd)
	buildCmd.AddCommand(buildEditCmd)
	buildCmd.AddCommand(buildSubmitCmd)
	buildCmd.AddCommand(buildDeleteCmd)

	addContentFlags(buildCreateCmd)
	addContentFlags(buildEditCmd)
	buildEditCmd.Flags().Bool("replace-parts", false, "Replace the full parts list")

	buildCreateCmd.Flags().String("owner", "", "Owner user ID")
	buildCreateCmd.MarkFlagRequired("owner")
	buildShowCmd.Flags().String("owner", "", "Owner user ID (omit for the public view)")
	buildListCmd.Flags().String("owner", "", "Owner user ID")
	buildListCmd.MarkFlagRequired("owner")
	buildEditCmd.Flags().String("owner", "", "Owner user ID")
	buildEditCmd.MarkFlagRequired("owner")
	buildSubmitCmd.Flags().String("owner", "", "Owner user ID")
	buildSubmitCmd.MarkFlagRequired("owner")
	buildDeleteCmd.Flags().String("owner", "", "Owner user ID")
	buildDeleteCmd.MarkFlagRequired("owner")

	// image subcommands
	imageCmd.AddCommand(imageAttachCmd)
	imageCmd.AddCommand(imageExportCmd)
	imageAttachCmd.Flags().String("owner", "", "Owner user ID")
	imageAttachCmd.MarkFlagRequired("owner")

	// mod subcommands
	modCmd.AddCommand(modQueueCmd)
	modCmd.AddCommand(modApproveCmd)
	modCmd.AddCommand(modPublishCmd)
	modCmd.AddCommand(modDeclineCmd)
	modCmd.AddCommand(modUnpublishCmd)
	modDeclineCmd.Flags().String("reason", "", "Moderation reason (required)")
	modDeclineCmd.MarkFlagRequired("reason")
	modUnpublishCmd.Flags().String("reason", "", "Moderation reason")

	// temp subcommands
	tempCmd.AddCommand(tempCreateCmd)
	tempCmd.AddCommand(tempShowCmd)
	tempCmd.AddCommand(tempEditCmd)
	tempCmd.AddCommand(tempShareCmd)
	addContentFlags(tempCreateCmd)
	addContentFlags(tempEditCmd)
	tempEditCmd.Flags().Bool("replace-parts", false, "Replace the full parts list")

	// react subcommands
	reactCmd.AddCommand(reactSetCmd)
	reactCmd.AddCommand(reactClearCmd)
	reactCmd.AddCommand(reactShowCmd)
	reactSetCmd.Flags().String("user", "", "Reacting user ID")
	reactSetCmd.MarkFlagRequired("user")
	reactClearCmd.Flags().String("user", "", "Reacting user ID")
	reactClearCmd.MarkFlagRequired("user")
	reactShowCmd.Flags().String("user", "", "Viewer user ID (for your own reaction)")

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(imageCmd)
	rootCmd.AddCommand(modCmd)
	rootCmd.AddCommand(tempCmd)
	rootCmd.AddCommand(reactCmd)
	rootCmd.AddCommand(sweepCmd)
}
