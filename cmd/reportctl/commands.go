package main

import (
	"merchant-reporting-bff/internal/core/domain"

	"github.com/spf13/cobra"
)

func loginCmd(a *app) *cobra.Command {
	var creds domain.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange merchant user credentials for an API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.users.Login(cmd.Context(), creds)
			if err != nil {
				return err
			}
			if token == nil {
				return a.print(nil)
			}
			return a.print(token)
		},
	}

	cmd.Flags().StringVar(&creds.Email, "email", "", "merchant user email")
	cmd.Flags().StringVar(&creds.Password, "password", "", "merchant user password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func userInfoCmd(a *app) *cobra.Command {
	var req domain.MerchantUserRequest

	cmd := &cobra.Command{
		Use:   "user-info",
		Short: "Show a merchant user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.requireToken()
			if err != nil {
				return err
			}
			info, err := a.users.GetMerchantUserInformation(cmd.Context(), req, token)
			if err != nil {
				return err
			}
			if info == nil {
				return a.print(nil)
			}
			return a.print(info)
		},
	}

	cmd.Flags().IntVar(&req.ID, "id", 0, "merchant user id")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func refundsCmd(a *app) *cobra.Command {
	var (
		req      domain.RefundsReportRequest
		merchant int
		acquirer int
	)

	cmd := &cobra.Command{
		Use:   "refunds",
		Short: "Fetch the refunds report for a date range",
		Example: `  reportctl refunds --from 2015-07-01 --to 2015-10-01
  reportctl refunds --from 2015-07-01 --to 2015-10-01 --merchant 1 --acquirer 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.requireToken()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("merchant") {
				req.Merchant = &merchant
			}
			if cmd.Flags().Changed("acquirer") {
				req.Acquirer = &acquirer
			}

			report, err := a.reports.GetRefundsReport(cmd.Context(), req, token)
			if err != nil {
				return err
			}
			if report == nil {
				return a.print(nil)
			}
			return a.print(report)
		},
	}

	cmd.Flags().StringVar(&req.FromDate, "from", "", "start date (yyyy-MM-dd)")
	cmd.Flags().StringVar(&req.ToDate, "to", "", "end date (yyyy-MM-dd)")
	cmd.Flags().IntVar(&merchant, "merchant", 0, "merchant id filter")
	cmd.Flags().IntVar(&acquirer, "acquirer", 0, "acquirer id filter")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func clientInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "client-info [transactionId]",
		Short: "Show the customer behind a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.requireToken()
			if err != nil {
				return err
			}
			info, err := a.clients.GetClientInfo(cmd.Context(), domain.ClientInfoRequest{TransactionID: args[0]}, token)
			if err != nil {
				return err
			}
			if info == nil {
				return a.print(nil)
			}
			return a.print(info)
		},
	}
}
