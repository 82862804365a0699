package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wifinity-io/rms-client/internal/constants"
	"github.com/wifinity-io/rms-client/pkg/rms"
)

// NewDevicesCommand creates the devices command group.
func NewDevicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "devices",
		Aliases: []string{"device"},
		Short:   "Manage devices",
		Long:    "List, register, update, and control RMS devices",
	}

	cmd.AddCommand(newDevicesListCommand())
	cmd.AddCommand(newDevicesGetCommand())
	cmd.AddCommand(newDevicesCreateCommand())
	cmd.AddCommand(newDevicesDeleteCommand())
	cmd.AddCommand(newDevicesMonitoringCommand())
	cmd.AddCommand(newDevicesRebootCommand())
	cmd.AddCommand(newDevicesCommandCommand())
	cmd.AddCommand(newDevicesActionCommand())
	cmd.AddCommand(newDevicesActionLogsCommand())

	return cmd
}

func newDevicesListCommand() *cobra.Command {
	var (
		allPages  bool
		limit     int
		status    string
		mac       string
		model     string
		companyID int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List devices",
		Long:  "List devices, optionally filtered by status, MAC, model, or company",
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := map[string]string{}
			if status != "" {
				filters["status"] = status
			}

			if mac != "" {
				filters["mac"] = mac
			}

			if model != "" {
				filters["model"] = model
			}

			if companyID > 0 {
				filters["company_id"] = strconv.Itoa(companyID)
			}

			return runDevicesListCommand(allPages, limit, filters)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (online, offline, not_activated)")
	cmd.Flags().StringVar(&mac, "mac", "", "filter by MAC address")
	cmd.Flags().StringVar(&model, "model", "", "filter by model")
	cmd.Flags().IntVar(&companyID, "company-id", 0, "filter by company ID")

	return cmd
}

func runDevicesListCommand(allPages bool, limit int, filters map[string]string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	params := rms.NewQueryParams().WithLimit(limit)
	for field, value := range filters {
		params.WithFilter(field, value)
	}

	var (
		devices []rms.Device
		total   *int
	)

	if allPages {
		devices, err = rms.CollectAll[rms.Device](ctx, client.Devices(), params)
		if err != nil {
			return fmt.Errorf("failed to list devices: %w", err)
		}
	} else {
		list, err := client.Devices().List(ctx, params)
		if err != nil {
			return fmt.Errorf("failed to list devices: %w", err)
		}

		devices = list.Data
		total = list.Meta.Total
	}

	return outputDevices(devices, total, allPages)
}

func outputDevices(devices []rms.Device, total *int, allPages bool) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(devices)
	case OutputFormatYAML:
		return StandardYAMLRenderer(devices)
	default:
		return renderDeviceTable(devices, total, allPages)
	}
}

func renderDeviceTable(devices []rms.Device, total *int, allPages bool) error {
	if len(devices) == 0 {
		_, _ = os.Stdout.WriteString("No devices found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Model", "Serial", "Status", "Last Seen")

	for _, device := range devices {
		_ = table.Append(strconv.Itoa(device.ID), device.Name, device.Model,
			device.Serial, string(device.Status), formatTime(device.LastSeenAt))
	}

	_ = table.Render()

	if !allPages && total != nil && *total > len(devices) {
		_, _ = fmt.Fprintf(os.Stdout, "\nShowing %d of %d. Use --all to fetch everything.\n", len(devices), *total)
	}

	return nil
}

func newDevicesGetCommand() *cobra.Command {
	var mac string

	cmd := &cobra.Command{
		Use:   "get [DEVICE_ID]",
		Short: "Get device details",
		Long:  "Display detailed information about a device, looked up by ID or by --mac",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var device *rms.Device

			switch {
			case len(args) == 1:
				deviceID, convErr := strconv.Atoi(args[0])
				if convErr != nil {
					return fmt.Errorf("invalid device ID %q: %w", args[0], convErr)
				}

				device, err = client.Devices().Get(ctx, deviceID)
			case mac != "":
				device, err = client.Devices().GetByFilter(ctx, map[string]string{"mac": mac})
			default:
				return rms.ErrIDOrFilterRequired
			}

			if err != nil {
				return fmt.Errorf("failed to get device: %w", err)
			}

			return outputDeviceDetails(device)
		},
	}

	cmd.Flags().StringVar(&mac, "mac", "", "look up by MAC address instead of ID")

	return cmd
}

func outputDeviceDetails(device *rms.Device) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(device)
	case OutputFormatYAML:
		return StandardYAMLRenderer(device)
	default:
		monitoring := constants.NotAvailable
		if device.Monitoring != nil {
			monitoring = strconv.FormatBool(*device.Monitoring)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", strconv.Itoa(device.ID))
		_ = table.Append("Name", device.Name)
		_ = table.Append("Model", device.Model)
		_ = table.Append("Serial", device.Serial)
		_ = table.Append("MAC", device.MAC)
		_ = table.Append("IMEI", device.IMEI)
		_ = table.Append("Status", string(device.Status))
		_ = table.Append("Company ID", strconv.Itoa(device.CompanyID))
		_ = table.Append("Monitoring", monitoring)
		_ = table.Append("Firmware", device.Firmware)
		_ = table.Append("Last Seen", formatTime(device.LastSeenAt))
		_ = table.Append("Created", formatTime(device.CreatedAt))
		_ = table.Render()
	}

	return nil
}

func newDevicesCreateCommand() *cobra.Command {
	var request rms.DeviceCreateRequest

	var series string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a device",
		Long:  "Register a new device. MAC is required for rut/tcr series, IMEI for trb.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request.DeviceSeries = rms.DeviceSeries(series)

			device, err := client.Devices().Create(context.Background(), &request)
			if err != nil {
				return fmt.Errorf("failed to register device: %w", err)
			}

			fmt.Printf("Successfully registered device with ID %d\n", device.ID)

			return nil
		},
	}

	cmd.Flags().IntVar(&request.CompanyID, "company-id", 0, "company the device belongs to (required)")
	cmd.Flags().StringVar(&series, "series", "", "device series: rut, trb, tcr, tap, otd, swm (required)")
	cmd.Flags().StringVar(&request.Serial, "serial", "", "device serial number (required)")
	cmd.Flags().StringVar(&request.PasswordConfirmation, "password", "", "device admin password (required)")
	cmd.Flags().StringVar(&request.Name, "name", "", "device name")
	cmd.Flags().StringVar(&request.MAC, "mac", "", "device MAC address")
	cmd.Flags().StringVar(&request.IMEI, "imei", "", "device IMEI")
	_ = cmd.MarkFlagRequired("company-id")
	_ = cmd.MarkFlagRequired("series")
	_ = cmd.MarkFlagRequired("serial")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newDevicesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete DEVICE_ID",
		Short: "Delete a device",
		Long:  "Remove a device from RMS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deviceID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid device ID %q: %w", args[0], err)
			}

			if !force {
				fmt.Printf("Really delete device %d? (y/N): ", deviceID)

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Cancelled")

					return nil
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Devices().Delete(context.Background(), deviceID)
			if err != nil {
				return fmt.Errorf("failed to delete device: %w", err)
			}

			fmt.Printf("Successfully deleted device %d\n", deviceID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func newDevicesMonitoringCommand() *cobra.Command {
	var enable bool

	cmd := &cobra.Command{
		Use:   "monitoring DEVICE_ID...",
		Short: "Toggle device monitoring",
		Long:  "Enable or disable monitoring for one or more devices",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targets := make([]rms.MonitoringTarget, 0, len(args))

			for _, arg := range args {
				deviceID, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid device ID %q: %w", arg, err)
				}

				targets = append(targets, rms.MonitoringTarget{ID: deviceID, Monitoring: enable})
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = client.Devices().SetMonitoring(context.Background(), targets)
			if err != nil {
				return fmt.Errorf("failed to update monitoring: %w", err)
			}

			state := "disabled"
			if enable {
				state = "enabled"
			}

			fmt.Printf("Monitoring %s for %d device(s)\n", state, len(targets))

			return nil
		},
	}

	cmd.Flags().BoolVar(&enable, "enable", true, "enable (true) or disable (false) monitoring")

	return cmd
}

func newDevicesRebootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reboot DEVICE_ID",
		Short: "Reboot a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deviceID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid device ID %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			_, err = client.DeviceCommands().Execute(context.Background(), deviceID, &rms.DeviceCommand{
				Command: "reboot",
			})
			if err != nil {
				return fmt.Errorf("failed to reboot device: %w", err)
			}

			fmt.Printf("Reboot accepted for device %d\n", deviceID)

			return nil
		},
	}

	return cmd
}

func newDevicesCommandCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "command DEVICE_ID COMMAND",
		Short: "Execute a command on a device",
		Long:  "Execute a named command (for example reboot) on a single device",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deviceID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid device ID %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.DeviceCommands().Execute(context.Background(), deviceID, &rms.DeviceCommand{
				Command: args[1],
			})
			if err != nil {
				return fmt.Errorf("failed to execute command: %w", err)
			}

			if len(result.Data) > 0 {
				return StandardJSONRenderer(result)
			}

			fmt.Printf("Command '%s' accepted for device %d\n", args[1], deviceID)

			return nil
		},
	}

	return cmd
}

func newDevicesActionCommand() *cobra.Command {
	var (
		deviceIDs []int
		tagID     int
		cancel    bool
	)

	cmd := &cobra.Command{
		Use:   "action ACTION",
		Short: "Run a bulk action",
		Long:  "Run a bulk action (for example firmware_update) across devices or a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if cancel {
				_, err = client.DeviceCommands().CancelActions(ctx, deviceIDs)
				if err != nil {
					return fmt.Errorf("failed to cancel actions: %w", err)
				}

				fmt.Printf("Cancelled pending actions on %d device(s)\n", len(deviceIDs))

				return nil
			}

			action := &rms.DeviceAction{
				Action:    args[0],
				DeviceIDs: deviceIDs,
			}
			if tagID > 0 {
				action.TagID = &tagID
			}

			_, err = client.DeviceCommands().ExecuteAction(ctx, action)
			if err != nil {
				return fmt.Errorf("failed to execute action: %w", err)
			}

			fmt.Printf("Action '%s' accepted\n", args[0])

			return nil
		},
	}

	cmd.Flags().IntSliceVar(&deviceIDs, "device", nil, "target device ID (repeatable)")
	cmd.Flags().IntVar(&tagID, "tag", 0, "target every device carrying this tag")
	cmd.Flags().BoolVar(&cancel, "cancel", false, "cancel pending actions on the targeted devices")

	return cmd
}

func newDevicesActionLogsCommand() *cobra.Command {
	var (
		deviceID int
		tagID    int
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "action-logs",
		Short: "List device action logs",
		Long:  "List the action log for a device or tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := &rms.ActionLogParams{Limit: limit}
			if deviceID > 0 {
				params.DeviceID = &deviceID
			}

			if tagID > 0 {
				params.TagID = &tagID
			}

			logs, err := client.DeviceCommands().ActionLogs(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list action logs: %w", err)
			}

			return outputActionLogs(logs.Data)
		},
	}

	cmd.Flags().IntVar(&deviceID, "device", 0, "device to list logs for")
	cmd.Flags().IntVar(&tagID, "tag", 0, "tag to list logs for")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")

	return cmd
}

func outputActionLogs(logs []rms.ActionLog) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(logs)
	case OutputFormatYAML:
		return StandardYAMLRenderer(logs)
	default:
		if len(logs) == 0 {
			_, _ = os.Stdout.WriteString("No action logs found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Device ID", "Action", "Status", "Created")

		for _, entry := range logs {
			_ = table.Append(strconv.Itoa(entry.ID), strconv.Itoa(entry.DeviceID),
				entry.Action, entry.Status, formatTime(entry.CreatedAt))
		}

		_ = table.Render()
	}

	return nil
}
