package commands

import (
	"fmt"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/infrastructure/smsgateway"

	"github.com/spf13/cobra"
)

// SendSMSCmd sends one message through the configured gateway
func SendSMSCmd(cmd *cobra.Command, _ []string) error {
	to, err := cmd.Flags().GetString("to")
	if err != nil {
		return fmt.Errorf("invalid to flag: %w", err)
	}
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		return fmt.Errorf("invalid message flag: %w", err)
	}

	env, err := setupEnvironment(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	sender, err := smsgateway.NewSender(&env.cfg.SMS, env.logger)
	if err != nil {
		return fmt.Errorf("failed to create sms sender: %w", err)
	}

	if err := sender.Send(cmd.Context(), to, message); err != nil {
		return err
	}
	env.logger.Info("SMS sent to ", to, " via the ", env.cfg.SMS.Driver, " driver")
	return nil
}

// InitSMSCommands registers the SMS gateway check
func InitSMSCommands(rootCmd *cobra.Command) error {
	sendSMSCmd := &cobra.Command{
		Use:   "send-sms",
		Short: "Send a test SMS through the configured gateway",
		Args:  cobra.NoArgs,
		RunE:  SendSMSCmd,
	}
	sendSMSCmd.Flags().String("to", "", "Bangladeshi mobile number")
	sendSMSCmd.Flags().String("message", "Test message from the campaign backend", "Message text")
	if err := sendSMSCmd.MarkFlagRequired("to"); err != nil {
		return fmt.Errorf("failed to mark to required: %w", err)
	}
	rootCmd.AddCommand(sendSMSCmd)
	return nil
}
